// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/elreinodedracula/menu-diario/dateformat"
	"github.com/elreinodedracula/menu-diario/models"
)

// A4 portrait, millimeters. Font sizes are points, like the print layout the
// restaurant has used since the first version of the menu.
const (
	margin = 20.0

	titleSize   = 32.0
	labelSize   = 18.0
	headingSize = 20.0
	courseSize  = 26.0
	footerSize  = 12.0

	lineStep    = 15.0 // vertical advance per course line
	sectionGap  = 15.0 // extra gap between the two course blocks
	footerAbove = 15.0 // footer distance from the bottom edge
)

// Render produces the printable menu for the given state and returns the
// document bytes together with its filename (menu-DD-MM-YYYY.pdf).
//
// The menu date is the selected date when one is set, otherwise today. A
// selected date that does not parse is an error, not a garbled header.
func Render(state models.MenuState) ([]byte, string, error) {
	menuDate := time.Now()
	if state.SelectedDate != nil {
		d, err := dateformat.Parse(*state.SelectedDate)
		if err != nil {
			return nil, "", err
		}
		menuDate = d
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := doc.GetPageSize()
	yPos := margin

	// Header
	doc.SetFont("Helvetica", "B", titleSize)
	doc.SetTextColor(40, 40, 40)
	textCentered(doc, tr(models.RestaurantName), pageWidth, yPos)
	yPos += 15

	doc.SetFontSize(labelSize)
	doc.SetTextColor(80, 80, 80)
	textCentered(doc, tr(models.MenuTitle(state.Language)), pageWidth, yPos)
	yPos += 10
	textCentered(doc, tr(dateformat.Format(menuDate, state.Language)), pageWidth, yPos)
	yPos += 25

	yPos = courseBlock(doc, tr, models.FirstCoursesLabel(state.Language),
		state.FirstCourses, pageWidth, yPos)
	yPos += sectionGap
	courseBlock(doc, tr, models.SecondCoursesLabel(state.Language),
		state.SecondCourses, pageWidth, yPos)

	// Footer sits at a fixed position regardless of content length.
	doc.SetFont("Helvetica", "", footerSize)
	doc.SetTextColor(180, 180, 180)
	textCentered(doc, tr(models.RestaurantName), pageWidth, pageHeight-footerAbove)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render menu document: %w", err)
	}

	filename := fmt.Sprintf("menu-%s.pdf", dateformat.FileDate(menuDate))
	return buf.Bytes(), filename, nil
}

// courseBlock draws a section heading and its non-empty dishes, upper-cased
// and centered, wrapping long names. Returns the advanced cursor.
func courseBlock(doc *fpdf.Fpdf, tr func(string) string, heading string,
	courses []models.MenuItem, pageWidth, yPos float64) float64 {

	doc.SetFont("Helvetica", "B", headingSize)
	doc.SetTextColor(100, 100, 100)
	textCentered(doc, tr(heading), pageWidth, yPos)
	yPos += lineStep

	doc.SetFont("Helvetica", "", courseSize)
	doc.SetTextColor(20, 20, 20)
	maxWidth := pageWidth - 2*margin
	for _, course := range courses {
		name := strings.TrimSpace(course.Name)
		if name == "" {
			continue
		}
		for _, line := range wrapText(doc, tr(strings.ToUpper(name)), maxWidth) {
			textCentered(doc, line, pageWidth, yPos)
			yPos += lineStep
		}
	}
	return yPos
}

// wrapText splits s on word boundaries into lines that fit maxWidth at the
// current font: keep appending words while the line stays under the budget,
// else start a new line. A single word wider than the budget gets its own
// line rather than being broken mid-word.
func wrapText(doc *fpdf.Fpdf, s string, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if doc.GetStringWidth(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

func textCentered(doc *fpdf.Fpdf, s string, pageWidth, y float64) {
	doc.Text((pageWidth-doc.GetStringWidth(s))/2, y, s)
}
