// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// RestaurantName is the fixed title printed on the menu header and footer.
const RestaurantName = "El Reino de Drácula"

// MenuTitle is the "Menu of the Day" label in the given language.
func MenuTitle(lang string) string {
	if lang == LanguageRO {
		return "Meniu Zilei"
	}
	return "Menú del Día"
}

// FirstCoursesLabel is the first-course section heading in the given language.
func FirstCoursesLabel(lang string) string {
	if lang == LanguageRO {
		return "Felul Întâi"
	}
	return "Primeros Platos"
}

// SecondCoursesLabel is the second-course section heading in the given language.
func SecondCoursesLabel(lang string) string {
	if lang == LanguageRO {
		return "Felul Doi"
	}
	return "Segundos Platos"
}
