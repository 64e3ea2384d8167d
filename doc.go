// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the menu-diario server.

menu-diario is the restaurant's daily-menu tool: the staff edits the two
course lists for the day, downloads the printable PDF, and publishes the
menu to the restaurant website (WordPress).

# Starting the Server

The server runs with a local SQLite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

WordPress credentials come from the environment (or a local .env file):

	WORDPRESS_URL=https://example.com WORDPRESS_API_KEY=... go run main.go

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_URL (-d): Connection string (default: file:menu.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - WORDPRESS_URL: WordPress base URL (publishing fails without it)
  - WORDPRESS_API_KEY: WordPress write credential
  - PUBLIC_BASE_URL: Public site URL for the view-on-web link

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the editable menu aggregate, persisted write-through
  - dateformat: es/ro date display strings and the shared date parser
  - pdf: the printable menu document
  - wordpress: publish validation, payload and Gutenberg content block
  - handlers: HTTP request handlers (menu, pdf, publish, update-menu relay)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
