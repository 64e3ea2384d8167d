// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/elreinodedracula/menu-diario/models"
)

// StateKey is the fixed namespace key the menu snapshot is persisted under.
const StateKey = "menu"

// ErrMinCourses is returned when a removal would leave a section empty.
var ErrMinCourses = errors.New("each section keeps at least one course")

// Store owns the editable menu aggregate. Every mutation produces a fresh
// snapshot, writes it through to the database, and only then replaces the
// in-memory state, so a failed write never leaves memory and disk disagreeing.
type Store struct {
	db    *sql.DB
	mu    sync.RWMutex
	state models.MenuState
}

// New loads the last persisted snapshot, substituting defaults for anything
// missing, unreadable, or written by a different schema version.
func New(db *sql.DB) (*Store, error) {
	s := &Store{db: db, state: models.DefaultMenuState()}

	var data string
	err := db.QueryRow(`SELECT data FROM menu_state WHERE key = $1`, StateKey).Scan(&data)
	if err == sql.ErrNoRows {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu state: %w", err)
	}

	var loaded models.MenuState
	if err := json.Unmarshal([]byte(data), &loaded); err != nil {
		slog.Warn("persisted menu state unreadable, using defaults", "error", err)
		return s, nil
	}
	s.state = sanitize(loaded)
	return s, nil
}

// sanitize fills defaults for fields an older or partial snapshot may lack.
func sanitize(st models.MenuState) models.MenuState {
	if st.Version != models.SchemaVersion {
		slog.Warn("persisted menu state has unknown version, using defaults", "version", st.Version)
		return models.DefaultMenuState()
	}
	if !models.ValidLanguage(st.Language) {
		st.Language = models.LanguageES
	}
	if len(st.FirstCourses) == 0 {
		st.FirstCourses = []models.MenuItem{{Name: ""}}
	}
	if len(st.SecondCourses) == 0 {
		st.SecondCourses = []models.MenuItem{{Name: ""}}
	}
	return st
}

// State returns a snapshot of the current menu. The snapshot shares nothing
// with the store, so callers can hold or compare it freely.
func (s *Store) State() models.MenuState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state)
}

func clone(st models.MenuState) models.MenuState {
	out := st
	out.FirstCourses = append([]models.MenuItem(nil), st.FirstCourses...)
	out.SecondCourses = append([]models.MenuItem(nil), st.SecondCourses...)
	if st.SelectedDate != nil {
		d := *st.SelectedDate
		out.SelectedDate = &d
	}
	return out
}

// mutate applies fn to a copy of the state, persists the result, and installs
// it as the new current state.
func (s *Store) mutate(fn func(*models.MenuState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := clone(s.state)
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Store) persist(st models.MenuState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode menu state: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO menu_state (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = $2, updated_at = $3
	`, StateKey, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to persist menu state: %w", err)
	}
	return nil
}

// SetLanguage switches the active menu language.
func (s *Store) SetLanguage(lang string) error {
	if !models.ValidLanguage(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	return s.mutate(func(st *models.MenuState) error {
		st.Language = lang
		return nil
	})
}

// SetSelectedDate sets the menu date (YYYY-MM-DD). A nil date clears it.
// The store does not judge the value; callers validate through dateformat.
func (s *Store) SetSelectedDate(date *string) error {
	return s.mutate(func(st *models.MenuState) error {
		if date == nil {
			st.SelectedDate = nil
			return nil
		}
		d := *date
		st.SelectedDate = &d
		return nil
	})
}

// AddFirstCourse appends an empty dish to the first-course section.
func (s *Store) AddFirstCourse() error {
	return s.mutate(func(st *models.MenuState) error {
		st.FirstCourses = append(st.FirstCourses, models.MenuItem{})
		return nil
	})
}

// AddSecondCourse appends an empty dish to the second-course section.
func (s *Store) AddSecondCourse() error {
	return s.mutate(func(st *models.MenuState) error {
		st.SecondCourses = append(st.SecondCourses, models.MenuItem{})
		return nil
	})
}

// UpdateFirstCourse replaces the dish name at index. Out-of-range is a no-op.
func (s *Store) UpdateFirstCourse(index int, name string) error {
	return s.mutate(func(st *models.MenuState) error {
		if index >= 0 && index < len(st.FirstCourses) {
			st.FirstCourses[index] = models.MenuItem{Name: name}
		}
		return nil
	})
}

// UpdateSecondCourse replaces the dish name at index. Out-of-range is a no-op.
func (s *Store) UpdateSecondCourse(index int, name string) error {
	return s.mutate(func(st *models.MenuState) error {
		if index >= 0 && index < len(st.SecondCourses) {
			st.SecondCourses[index] = models.MenuItem{Name: name}
		}
		return nil
	})
}

// RemoveFirstCourse removes the dish at index. Removing the last remaining
// dish returns ErrMinCourses; out-of-range is a no-op.
func (s *Store) RemoveFirstCourse(index int) error {
	return s.mutate(func(st *models.MenuState) error {
		items, err := removeAt(st.FirstCourses, index)
		if err != nil {
			return err
		}
		st.FirstCourses = items
		return nil
	})
}

// RemoveSecondCourse removes the dish at index, with the same guard as
// RemoveFirstCourse.
func (s *Store) RemoveSecondCourse(index int) error {
	return s.mutate(func(st *models.MenuState) error {
		items, err := removeAt(st.SecondCourses, index)
		if err != nil {
			return err
		}
		st.SecondCourses = items
		return nil
	})
}

func removeAt(items []models.MenuItem, index int) ([]models.MenuItem, error) {
	if index < 0 || index >= len(items) {
		return items, nil
	}
	if len(items) <= 1 {
		return nil, ErrMinCourses
	}
	out := make([]models.MenuItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out, nil
}

// ResetCourses restores both sections to a single empty dish and clears the
// date. The language is left as the operator set it.
func (s *Store) ResetCourses() error {
	return s.mutate(func(st *models.MenuState) error {
		st.FirstCourses = []models.MenuItem{{Name: ""}}
		st.SecondCourses = []models.MenuItem{{Name: ""}}
		st.SelectedDate = nil
		return nil
	})
}
