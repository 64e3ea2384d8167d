// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: logs start/completion of each request with a short
    request id and duration
  - CORS: permissive cross-origin headers for the editing frontend

# Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write the uniform {"error": message} failure shape that
    every boundary of the service uses
  - ParseJSONBody: decode a request body into a struct
*/
package middleware
