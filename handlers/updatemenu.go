// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/elreinodedracula/menu-diario/cliparse"
	"github.com/elreinodedracula/menu-diario/middleware"
	"github.com/elreinodedracula/menu-diario/models"
)

// wpWritePath is the write endpoint of the menu-diario WordPress plugin.
const wpWritePath = "/wp-json/menu-diario/v1/actualizar"

// UpdateMenuHandler relays publish payloads to the remote WordPress API,
// attaching the server-held credential. The API key never leaves this
// process in any other direction.
type UpdateMenuHandler struct {
	cfg cliparse.Config
	// No client timeout on purpose: the publish action is a single awaited
	// round trip and relies on the transport defaults.
	client *http.Client
}

func NewUpdateMenuHandler(cfg cliparse.Config) *UpdateMenuHandler {
	return &UpdateMenuHandler{cfg: cfg, client: &http.Client{}}
}

// Update handles POST /api/update-menu
func (h *UpdateMenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	// Strict configuration check: without both settings the remote call is
	// never attempted.
	if h.cfg.WordPressURL == "" {
		slog.Error("WORDPRESS_URL is not configured")
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Error de configuración: WORDPRESS_URL no está definido")
		return
	}
	if h.cfg.WordPressAPIKey == "" {
		slog.Error("WORDPRESS_API_KEY is not configured")
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Error de configuración: WORDPRESS_API_KEY no está definido")
		return
	}

	var payload models.UpdateMenuRequest
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode forwarded payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	target := h.cfg.WordPressURL + wpWritePath
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to build WordPress request", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", h.cfg.WordPressAPIKey)

	resp, err := h.client.Do(req)
	if err != nil {
		slog.Error("WordPress request failed", "url", target, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	defer resp.Body.Close()

	// Read as text first: WordPress error bodies are not always JSON.
	respText, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read WordPress response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("WordPress rejected menu update",
			"status", resp.StatusCode,
			"body", string(respText),
		)
		middleware.ErrorResponse(w, resp.StatusCode, remoteErrorMessage(respText, resp.StatusCode))
		return
	}

	var respData map[string]any
	if err := json.Unmarshal(respText, &respData); err != nil {
		slog.Warn("WordPress success response is not JSON", "body", string(respText))
		respData = map[string]any{
			"success": true,
			"message": "Menú actualizado correctamente",
		}
	}

	middleware.JSONResponse(w, http.StatusOK, respData)
}

// remoteErrorMessage extracts a readable message from a WordPress error
// body: the JSON "message" field when present, else the raw text, else a
// generic status line.
func remoteErrorMessage(body []byte, status int) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if len(bytes.TrimSpace(body)) > 0 {
		return string(body)
	}
	return fmt.Sprintf("HTTP %d", status)
}
