// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elreinodedracula/menu-diario/handlers"
	"github.com/elreinodedracula/menu-diario/models"
	"github.com/elreinodedracula/menu-diario/store"
	"github.com/elreinodedracula/menu-diario/testutil"
	"github.com/elreinodedracula/menu-diario/wordpress"
)

func publishableStore(t *testing.T) *store.Store {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	s, err := store.New(conn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	date := "2025-03-15"
	s.SetSelectedDate(&date)
	s.UpdateFirstCourse(0, "Sopa")
	s.UpdateSecondCourse(0, "Pollo")
	return s
}

func TestPublishHappyPath(t *testing.T) {
	var received models.UpdateMenuRequest
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer proxy.Close()

	cfg := testutil.GetTestConfig()
	h := handlers.NewPublishHandler(publishableStore(t), wordpress.New(proxy.URL), cfg)

	w := httptest.NewRecorder()
	h.Publish(w, testutil.MakeRequest("POST", "/menu/publish", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PublishResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Result["success"] != true {
		t.Errorf("Expected proxy result relayed, got %v", resp.Result)
	}
	if resp.ViewURL != cfg.PublicBaseURL {
		t.Errorf("Expected view URL %q, got %q", cfg.PublicBaseURL, resp.ViewURL)
	}
	if received.Language != models.LanguageES || received.MenuContent == "" {
		t.Errorf("Unexpected proxied payload: %+v", received)
	}
}

func TestPublishValidationError(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)
	s.UpdateFirstCourse(0, "Sopa")
	s.UpdateSecondCourse(0, "Pollo")
	// no date selected

	h := handlers.NewPublishHandler(s, wordpress.New("http://127.0.0.1:1"), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.Publish(w, testutil.MakeRequest("POST", "/menu/publish", nil, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Error != "No se ha seleccionado una fecha para el menú" {
		t.Errorf("Expected localized validation message, got %q", body.Error)
	}
}

func TestPublishProxyFailureIsBadGateway(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Error de configuración: WORDPRESS_URL no está definido"})
	}))
	defer proxy.Close()

	s := publishableStore(t)
	before := s.State()

	h := handlers.NewPublishHandler(s, wordpress.New(proxy.URL), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.Publish(w, testutil.MakeRequest("POST", "/menu/publish", nil, nil))
	testutil.AssertStatus(t, w, http.StatusBadGateway)

	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Error != "Error de configuración: WORDPRESS_URL no está definido" {
		t.Errorf("Expected proxy message relayed, got %q", body.Error)
	}

	// A failed publish leaves the menu untouched.
	after := s.State()
	if after.FirstCourses[0] != before.FirstCourses[0] || after.SelectedDate == nil {
		t.Errorf("State changed by failed publish: %+v", after)
	}
}
