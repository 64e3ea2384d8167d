// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/elreinodedracula/menu-diario/dateformat"
	"github.com/elreinodedracula/menu-diario/models"
)

// ValidationError is a pre-network rejection with a message in the menu's
// active language, ready to show to the operator.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation messages, per language. Wording carried over from the site the
// restaurant staff already knows.
var (
	msgNoDate = map[string]string{
		models.LanguageES: "No se ha seleccionado una fecha para el menú",
		models.LanguageRO: "Nu a fost selectată o dată pentru meniu",
	}
	msgInvalidDate = map[string]string{
		models.LanguageES: "La fecha seleccionada no es válida",
		models.LanguageRO: "Data selectată nu este validă",
	}
	msgEmptySection = map[string]string{
		models.LanguageES: "Debes incluir al menos un plato en cada sección",
		models.LanguageRO: "Trebuie să incluzi cel puțin un fel de mâncare în fiecare secțiune",
	}
)

// Publisher submits the menu to the update-menu proxy. One attempt per call:
// no retry, no queue, no caching.
type Publisher struct {
	endpoint string
	client   *http.Client
}

// New returns a Publisher posting to the given proxy endpoint.
func New(endpoint string) *Publisher {
	return &Publisher{endpoint: endpoint, client: &http.Client{}}
}

// BuildPayload validates the state and derives the transmission payload.
// Validation failures come back as *ValidationError and mean no network
// call should be made.
func BuildPayload(state models.MenuState) (models.MenuPayload, error) {
	lang := state.Language

	if state.SelectedDate == nil {
		return models.MenuPayload{}, &ValidationError{Message: msgNoDate[lang]}
	}
	menuDate, err := dateformat.Parse(*state.SelectedDate)
	if err != nil {
		return models.MenuPayload{}, &ValidationError{Message: msgInvalidDate[lang]}
	}

	first := nonEmptyNames(state.FirstCourses)
	second := nonEmptyNames(state.SecondCourses)
	if len(first) == 0 || len(second) == 0 {
		return models.MenuPayload{}, &ValidationError{Message: msgEmptySection[lang]}
	}

	return models.MenuPayload{
		Date:          dateformat.Format(menuDate, lang),
		FirstCourses:  first,
		SecondCourses: second,
		Language:      lang,
	}, nil
}

func nonEmptyNames(courses []models.MenuItem) []string {
	var names []string
	for _, course := range courses {
		if name := strings.TrimSpace(course.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Publish validates the state, builds the payload and content block, and
// posts them to the proxy. It returns the decoded success body.
func (p *Publisher) Publish(ctx context.Context, state models.MenuState) (map[string]any, error) {
	payload, err := BuildPayload(state)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(models.UpdateMenuRequest{
		MenuContent: Content(payload),
		Date:        payload.Date,
		Language:    payload.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu payload: %w", err)
	}

	slog.Info("publishing menu",
		"date", payload.Date,
		"first_courses", len(payload.FirstCourses),
		"second_courses", len(payload.SecondCourses),
		"language", payload.Language,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach update-menu endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody models.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return nil, fmt.Errorf("%s", errBody.Error)
		}
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode update-menu response: %w", err)
	}
	return result, nil
}
