// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/elreinodedracula/menu-diario/cliparse"
	"github.com/elreinodedracula/menu-diario/handlers"
	"github.com/elreinodedracula/menu-diario/middleware"
	"github.com/elreinodedracula/menu-diario/store"
	"github.com/elreinodedracula/menu-diario/wordpress"
)

func NewRouter(s *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(s)
	pdfHandler := handlers.NewPDFHandler(s)
	publishHandler := handlers.NewPublishHandler(s, wordpress.New(cfg.ProxyEndpoint), cfg)
	updateMenuHandler := handlers.NewUpdateMenuHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Menu state operations
	mux.HandleFunc("GET /menu", middleware.WithLogging(menuHandler.GetMenu))
	mux.HandleFunc("PUT /menu/language", middleware.WithLogging(menuHandler.SetLanguage))
	mux.HandleFunc("PUT /menu/date", middleware.WithLogging(menuHandler.SetDate))
	mux.HandleFunc("POST /menu/first-courses", middleware.WithLogging(menuHandler.AddCourse("first")))
	mux.HandleFunc("POST /menu/second-courses", middleware.WithLogging(menuHandler.AddCourse("second")))
	mux.HandleFunc("PUT /menu/first-courses/{index}", middleware.WithLogging(menuHandler.UpdateCourse("first")))
	mux.HandleFunc("PUT /menu/second-courses/{index}", middleware.WithLogging(menuHandler.UpdateCourse("second")))
	mux.HandleFunc("DELETE /menu/first-courses/{index}", middleware.WithLogging(menuHandler.RemoveCourse("first")))
	mux.HandleFunc("DELETE /menu/second-courses/{index}", middleware.WithLogging(menuHandler.RemoveCourse("second")))
	mux.HandleFunc("POST /menu/reset", middleware.WithLogging(menuHandler.Reset))

	// Document download and publication
	mux.HandleFunc("GET /menu/pdf", middleware.WithLogging(pdfHandler.Download))
	mux.HandleFunc("POST /menu/publish", middleware.WithLogging(publishHandler.Publish))

	// WordPress relay (holds the API key server-side)
	mux.HandleFunc("POST /api/update-menu", middleware.WithLogging(updateMenuHandler.Update))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("menu-diario API v1"))
	})

	return mux
}
