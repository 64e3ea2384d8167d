// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/elreinodedracula/menu-diario/dateformat"
	"github.com/elreinodedracula/menu-diario/middleware"
	"github.com/elreinodedracula/menu-diario/pdf"
	"github.com/elreinodedracula/menu-diario/store"
)

// PDFHandler renders the current menu as a downloadable document.
type PDFHandler struct {
	store *store.Store
}

func NewPDFHandler(s *store.Store) *PDFHandler {
	return &PDFHandler{store: s}
}

// Download handles GET /menu/pdf
func (h *PDFHandler) Download(w http.ResponseWriter, r *http.Request) {
	data, filename, err := pdf.Render(h.store.State())
	if errors.Is(err, dateformat.ErrInvalidDate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selected date is not a valid date")
		return
	}
	if err != nil {
		slog.Error("failed to render menu document", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate document")
		return
	}

	slog.Info("menu document generated",
		"filename", filename,
		"size", humanize.Bytes(uint64(len(data))),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write menu document", "error", err)
	}
}
