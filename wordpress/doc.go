// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wordpress builds the published form of the menu and submits it.

# Flow

Publish validates the menu state first: a date must be selected, it must be
a real calendar date, and each course section must keep at least one
non-empty dish after trimming. Failures are *ValidationError values with the
message already in the menu's active language, and no network call happens.

A valid state becomes a MenuPayload (formatted date, trimmed course names)
plus a Gutenberg block serialization of the same menu (Content). Both go to
the local update-menu proxy as one JSON body:

	{"menu_content": "...", "date": "...", "language": "es"}

The proxy holds the WordPress credential; this package never sees it.

# Failure handling

A non-200 proxy response is an error carrying the proxy's {"error": ...}
message when one is present, else a generic "HTTP <status>". There is
exactly one attempt per Publish call.
*/
package wordpress
