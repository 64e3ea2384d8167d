// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/elreinodedracula/menu-diario/cliparse"
	"github.com/elreinodedracula/menu-diario/middleware"
	"github.com/elreinodedracula/menu-diario/models"
	"github.com/elreinodedracula/menu-diario/store"
	"github.com/elreinodedracula/menu-diario/wordpress"
)

// PublishHandler submits the current menu through the publisher. A failed
// publish never touches the stored state, so the operator can retry as-is.
type PublishHandler struct {
	store *store.Store
	pub   *wordpress.Publisher
	cfg   cliparse.Config
}

func NewPublishHandler(s *store.Store, pub *wordpress.Publisher, cfg cliparse.Config) *PublishHandler {
	return &PublishHandler{store: s, pub: pub, cfg: cfg}
}

// Publish handles POST /menu/publish
func (h *PublishHandler) Publish(w http.ResponseWriter, r *http.Request) {
	result, err := h.pub.Publish(r.Context(), h.store.State())

	var verr *wordpress.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
		return
	}
	if err != nil {
		slog.Error("menu publish failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	resp := models.PublishResponse{Result: result}
	if h.cfg.PublicBaseURL != "" {
		resp.ViewURL = h.cfg.PublicBaseURL
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
