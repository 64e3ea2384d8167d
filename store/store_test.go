// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"testing"

	"github.com/elreinodedracula/menu-diario/models"
	"github.com/elreinodedracula/menu-diario/store"
	"github.com/elreinodedracula/menu-diario/testutil"
)

func TestNewStartsWithDefaults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, err := store.New(conn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	st := s.State()
	if st.Language != models.LanguageES {
		t.Errorf("Expected default language es, got %q", st.Language)
	}
	if len(st.FirstCourses) != 1 || len(st.SecondCourses) != 1 {
		t.Errorf("Expected one empty course per section, got %d/%d",
			len(st.FirstCourses), len(st.SecondCourses))
	}
	if st.SelectedDate != nil {
		t.Errorf("Expected no selected date, got %q", *st.SelectedDate)
	}
}

func TestAddAndUpdateCourses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	if err := s.UpdateFirstCourse(0, "Sopa"); err != nil {
		t.Fatalf("UpdateFirstCourse failed: %v", err)
	}
	if err := s.AddFirstCourse(); err != nil {
		t.Fatalf("AddFirstCourse failed: %v", err)
	}
	if err := s.UpdateFirstCourse(1, "Ensalada"); err != nil {
		t.Fatalf("UpdateFirstCourse failed: %v", err)
	}

	st := s.State()
	if len(st.FirstCourses) != 2 {
		t.Fatalf("Expected 2 first courses, got %d", len(st.FirstCourses))
	}
	if st.FirstCourses[0].Name != "Sopa" || st.FirstCourses[1].Name != "Ensalada" {
		t.Errorf("Unexpected course names: %+v", st.FirstCourses)
	}
}

func TestUpdateOutOfRangeIsNoOp(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	s.UpdateFirstCourse(0, "Sopa")
	if err := s.UpdateFirstCourse(5, "Fantasma"); err != nil {
		t.Fatalf("Out-of-range update should not fail: %v", err)
	}
	if err := s.UpdateFirstCourse(-1, "Fantasma"); err != nil {
		t.Fatalf("Negative-index update should not fail: %v", err)
	}

	st := s.State()
	if len(st.FirstCourses) != 1 || st.FirstCourses[0].Name != "Sopa" {
		t.Errorf("State changed by out-of-range update: %+v", st.FirstCourses)
	}
}

func TestRemoveKeepsAtLeastOneCourse(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	err := s.RemoveFirstCourse(0)
	if !errors.Is(err, store.ErrMinCourses) {
		t.Errorf("Expected ErrMinCourses, got %v", err)
	}

	s.AddFirstCourse()
	if err := s.RemoveFirstCourse(0); err != nil {
		t.Fatalf("Remove with two courses should succeed: %v", err)
	}

	err = s.RemoveFirstCourse(0)
	if !errors.Is(err, store.ErrMinCourses) {
		t.Errorf("Expected ErrMinCourses on last course, got %v", err)
	}

	if n := len(s.State().FirstCourses); n != 1 {
		t.Errorf("Expected 1 course remaining, got %d", n)
	}
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	s.AddSecondCourse()
	if err := s.RemoveSecondCourse(7); err != nil {
		t.Fatalf("Out-of-range remove should not fail: %v", err)
	}
	if n := len(s.State().SecondCourses); n != 2 {
		t.Errorf("Expected 2 courses, got %d", n)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	s.UpdateFirstCourse(0, "a")
	s.AddFirstCourse()
	s.UpdateFirstCourse(1, "b")
	s.AddFirstCourse()
	s.UpdateFirstCourse(2, "c")

	if err := s.RemoveFirstCourse(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	st := s.State()
	if len(st.FirstCourses) != 2 || st.FirstCourses[0].Name != "a" || st.FirstCourses[1].Name != "c" {
		t.Errorf("Unexpected courses after remove: %+v", st.FirstCourses)
	}
}

func TestResetCourses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	date := "2025-03-15"
	s.SetLanguage(models.LanguageRO)
	s.SetSelectedDate(&date)
	s.UpdateFirstCourse(0, "Ciorbă")
	s.AddSecondCourse()
	s.UpdateSecondCourse(1, "Sarmale")

	if err := s.ResetCourses(); err != nil {
		t.Fatalf("ResetCourses failed: %v", err)
	}

	st := s.State()
	if len(st.FirstCourses) != 1 || st.FirstCourses[0].Name != "" {
		t.Errorf("First courses not reset: %+v", st.FirstCourses)
	}
	if len(st.SecondCourses) != 1 || st.SecondCourses[0].Name != "" {
		t.Errorf("Second courses not reset: %+v", st.SecondCourses)
	}
	if st.SelectedDate != nil {
		t.Errorf("Expected date cleared, got %q", *st.SelectedDate)
	}
	if st.Language != models.LanguageRO {
		t.Errorf("Reset must not touch language, got %q", st.Language)
	}
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	if err := s.SetLanguage("en"); err == nil {
		t.Error("Expected error for unsupported language")
	}
	if got := s.State().Language; got != models.LanguageES {
		t.Errorf("Language changed by rejected mutation: %q", got)
	}
}

func TestSnapshotDoesNotAliasStore(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	s.UpdateFirstCourse(0, "Sopa")
	before := s.State()
	s.UpdateFirstCourse(0, "Gazpacho")

	if before.FirstCourses[0].Name != "Sopa" {
		t.Errorf("Earlier snapshot mutated: %+v", before.FirstCourses)
	}
}

func TestStateSurvivesReload(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s, _ := store.New(conn)

	date := "2025-03-15"
	s.SetLanguage(models.LanguageRO)
	s.SetSelectedDate(&date)
	s.UpdateFirstCourse(0, "Ciorbă de burtă")
	s.AddSecondCourse()
	s.UpdateSecondCourse(0, "Sarmale")
	s.UpdateSecondCourse(1, "Mici")

	reloaded, err := store.New(conn)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	before, after := s.State(), reloaded.State()
	if after.Language != before.Language {
		t.Errorf("Language lost: %q != %q", after.Language, before.Language)
	}
	if after.SelectedDate == nil || *after.SelectedDate != date {
		t.Errorf("Date lost: %v", after.SelectedDate)
	}
	if len(after.FirstCourses) != len(before.FirstCourses) ||
		after.FirstCourses[0].Name != "Ciorbă de burtă" {
		t.Errorf("First courses lost: %+v", after.FirstCourses)
	}
	if len(after.SecondCourses) != 2 ||
		after.SecondCourses[0].Name != "Sarmale" || after.SecondCourses[1].Name != "Mici" {
		t.Errorf("Second courses lost: %+v", after.SecondCourses)
	}
}

func TestUnknownPersistedVersionFallsBackToDefaults(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := conn.Exec(`INSERT INTO menu_state (key, data, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)`,
		store.StateKey, `{"version":99,"language":"ro","firstCourses":[{"name":"x"}]}`)
	if err != nil {
		t.Fatalf("Failed to seed state: %v", err)
	}

	s, err := store.New(conn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	st := s.State()
	if st.Language != models.LanguageES || len(st.FirstCourses) != 1 || st.FirstCourses[0].Name != "" {
		t.Errorf("Expected defaults for unknown version, got %+v", st)
	}
}

func TestPartialPersistedStateIsDefaulted(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := conn.Exec(`INSERT INTO menu_state (key, data, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)`,
		store.StateKey, `{"version":1,"language":"ro"}`)
	if err != nil {
		t.Fatalf("Failed to seed state: %v", err)
	}

	s, err := store.New(conn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	st := s.State()
	if st.Language != models.LanguageRO {
		t.Errorf("Expected language preserved, got %q", st.Language)
	}
	if len(st.FirstCourses) != 1 || len(st.SecondCourses) != 1 {
		t.Errorf("Expected missing sections defaulted, got %d/%d",
			len(st.FirstCourses), len(st.SecondCourses))
	}
}
