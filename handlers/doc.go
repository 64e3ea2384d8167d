// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler groups

  - MenuHandler: the menu aggregate's operations (language, date, course
    add/update/remove, reset)
  - PDFHandler: renders the current menu as a downloadable PDF
  - PublishHandler: validates and submits the menu through the publisher
  - UpdateMenuHandler: relays payloads to the WordPress write API with the
    server-held credential

# Conventions

Handlers are structs built with their dependencies (store, publisher,
config) injected, one exported method per route. Bodies are parsed with
middleware.ParseJSONBody; successes go out through middleware.JSONResponse
and failures through middleware.ErrorResponse as {"error": message}.
Internal errors are logged with slog and surfaced as generic messages,
never as stack traces.
*/
package handlers
