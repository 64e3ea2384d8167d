// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - MenuItem: one named dish
  - MenuState: the editable aggregate (two course lists, date, language)
  - MenuPayload: the derived structure sent to WordPress at publish time

# Request Types

  - SetLanguageRequest: language ("es" or "ro")
  - SetDateRequest: date (YYYY-MM-DD, empty clears)
  - UpdateCourseRequest: name
  - UpdateMenuRequest: menu_content, date, language (proxy body)

# Response Types

  - PublishResponse: result, view_url
  - ErrorResponse: error

# Constants

Language values:

  - LanguageES ("es")
  - LanguageRO ("ro")

SchemaVersion tags persisted snapshots so future shape changes can default
old entries instead of misreading them.
*/
package models
