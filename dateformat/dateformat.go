// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package dateformat turns menu dates into the display strings used on the
// printed menu and the published page. Formatting is table-driven so the
// output is identical on every host, with no locale data dependency.
package dateformat

import (
	"errors"
	"fmt"
	"time"

	"github.com/elreinodedracula/menu-diario/models"
)

// ErrInvalidDate is returned by Parse for input that is not a calendar date.
var ErrInvalidDate = errors.New("invalid date")

var monthsRO = [12]string{
	"ianuarie", "februarie", "martie", "aprilie", "mai", "iunie",
	"iulie", "august", "septembrie", "octombrie", "noiembrie", "decembrie",
}

var monthsES = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Indexed by time.Weekday (Sunday = 0).
var weekdaysES = [7]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// Parse is the single coercion step for menu dates. It accepts an ISO date
// (YYYY-MM-DD) or a full RFC 3339 timestamp and returns ErrInvalidDate for
// anything else, so callers never format a garbage value.
func Parse(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Format renders t in the long form of the given menu language:
//
//	ro: "15 martie 2025"
//	es: "sábado, 15 de marzo de 2025"
//
// Unknown languages fall back to the Spanish form, matching the menu's
// default language.
func Format(t time.Time, lang string) string {
	if lang == models.LanguageRO {
		return fmt.Sprintf("%d %s %d", t.Day(), monthsRO[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysES[t.Weekday()], t.Day(), monthsES[t.Month()-1], t.Year())
}

// FileDate renders t as DD-MM-YYYY for the generated document filename.
func FileDate(t time.Time) string {
	return t.Format("02-01-2006")
}
