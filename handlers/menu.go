// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/elreinodedracula/menu-diario/dateformat"
	"github.com/elreinodedracula/menu-diario/middleware"
	"github.com/elreinodedracula/menu-diario/models"
	"github.com/elreinodedracula/menu-diario/store"
)

// MenuHandler exposes the menu aggregate's operations over HTTP.
type MenuHandler struct {
	store *store.Store
}

func NewMenuHandler(s *store.Store) *MenuHandler {
	return &MenuHandler{store: s}
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.State())
}

// SetLanguage handles PUT /menu/language
func (h *MenuHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req models.SetLanguageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.SetLanguage(req.Language); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "language must be es or ro")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.State())
}

// SetDate handles PUT /menu/date
func (h *MenuHandler) SetDate(w http.ResponseWriter, r *http.Request) {
	var req models.SetDateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var date *string
	if req.Date != "" {
		// Normalize through the shared parse step so the store only ever
		// holds dates the renderer and publisher can format.
		d, err := dateformat.Parse(req.Date)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "date must be a valid YYYY-MM-DD date")
			return
		}
		iso := d.Format("2006-01-02")
		date = &iso
	}

	if err := h.store.SetSelectedDate(date); err != nil {
		slog.Error("failed to set menu date", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update menu")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.State())
}

// AddCourse handles POST /menu/first-courses and POST /menu/second-courses
func (h *MenuHandler) AddCourse(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		if section == sectionFirst {
			err = h.store.AddFirstCourse()
		} else {
			err = h.store.AddSecondCourse()
		}
		if err != nil {
			slog.Error("failed to add course", "section", section, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update menu")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, h.store.State())
	}
}

// UpdateCourse handles PUT /menu/{section}-courses/{index}
func (h *MenuHandler) UpdateCourse(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := courseIndex(w, r)
		if !ok {
			return
		}

		var req models.UpdateCourseRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		var err error
		if section == sectionFirst {
			err = h.store.UpdateFirstCourse(index, req.Name)
		} else {
			err = h.store.UpdateSecondCourse(index, req.Name)
		}
		if err != nil {
			slog.Error("failed to update course", "section", section, "index", index, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update menu")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, h.store.State())
	}
}

// RemoveCourse handles DELETE /menu/{section}-courses/{index}
func (h *MenuHandler) RemoveCourse(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := courseIndex(w, r)
		if !ok {
			return
		}

		var err error
		if section == sectionFirst {
			err = h.store.RemoveFirstCourse(index)
		} else {
			err = h.store.RemoveSecondCourse(index)
		}
		if errors.Is(err, store.ErrMinCourses) {
			middleware.ErrorResponse(w, http.StatusConflict, "each section keeps at least one course")
			return
		}
		if err != nil {
			slog.Error("failed to remove course", "section", section, "index", index, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update menu")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, h.store.State())
	}
}

// Reset handles POST /menu/reset
func (h *MenuHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ResetCourses(); err != nil {
		slog.Error("failed to reset menu", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset menu")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.store.State())
}

const (
	sectionFirst  = "first"
	sectionSecond = "second"
)

func courseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be a non-negative integer")
		return 0, false
	}
	return index, true
}
