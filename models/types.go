// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Menu languages
const (
	LanguageES = "es"
	LanguageRO = "ro"
)

// SchemaVersion is the version tag written into every persisted menu snapshot.
// A snapshot with a different version is discarded in favor of defaults.
const SchemaVersion = 1

// ValidLanguage reports whether lang is one of the supported menu languages.
func ValidLanguage(lang string) bool {
	return lang == LanguageES || lang == LanguageRO
}

// Domain types

// MenuItem is one named dish within a course section.
type MenuItem struct {
	Name string `json:"name"`
}

// MenuState is the full editable aggregate: two course lists, a date and a
// language. SelectedDate is an ISO date string (YYYY-MM-DD) and nil until the
// operator picks one.
type MenuState struct {
	Version       int        `json:"version"`
	Language      string     `json:"language"`
	FirstCourses  []MenuItem `json:"firstCourses"`
	SecondCourses []MenuItem `json:"secondCourses"`
	SelectedDate  *string    `json:"selectedDate,omitempty"`
}

// DefaultMenuState returns the state a fresh session starts from: Spanish,
// one empty dish per section, no date.
func DefaultMenuState() MenuState {
	return MenuState{
		Version:       SchemaVersion,
		Language:      LanguageES,
		FirstCourses:  []MenuItem{{Name: ""}},
		SecondCourses: []MenuItem{{Name: ""}},
	}
}

// MenuPayload is the transmission-ready structure built at publish time.
// It is derived from MenuState and never persisted.
type MenuPayload struct {
	Date          string   `json:"date"`
	FirstCourses  []string `json:"first_courses"`
	SecondCourses []string `json:"second_courses"`
	Language      string   `json:"language"`
}

// Request types

type SetLanguageRequest struct {
	Language string `json:"language"`
}

// SetDateRequest carries an ISO date (YYYY-MM-DD). An empty string clears the
// selected date.
type SetDateRequest struct {
	Date string `json:"date"`
}

type UpdateCourseRequest struct {
	Name string `json:"name"`
}

// UpdateMenuRequest is the body the publisher sends to the update-menu proxy,
// and the proxy forwards to WordPress unchanged.
type UpdateMenuRequest struct {
	MenuContent string `json:"menu_content"`
	Date        string `json:"date"`
	Language    string `json:"language"`
}

// Response types

type PublishResponse struct {
	Result  map[string]any `json:"result"`
	ViewURL string         `json:"view_url,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
