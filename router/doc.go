// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

Routes:

	GET    /health
	GET    /menu
	PUT    /menu/language
	PUT    /menu/date
	POST   /menu/first-courses
	POST   /menu/second-courses
	PUT    /menu/first-courses/{index}
	PUT    /menu/second-courses/{index}
	DELETE /menu/first-courses/{index}
	DELETE /menu/second-courses/{index}
	POST   /menu/reset
	GET    /menu/pdf
	POST   /menu/publish
	POST   /api/update-menu

Every route except health and root is wrapped in request logging.
*/
package router
