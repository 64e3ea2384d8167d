// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wordpress

import (
	"fmt"
	"html"
	"strings"

	"github.com/elreinodedracula/menu-diario/models"
)

// Content serializes the payload as the Gutenberg block markup the menu page
// is built from. The proxy and WordPress treat it as an opaque string.
func Content(payload models.MenuPayload) string {
	var b strings.Builder

	b.WriteString("<!-- wp:group {\"className\":\"menu-dia-content\"} -->\n")
	b.WriteString("<div class=\"wp-block-group menu-dia-content\">\n")

	fmt.Fprintf(&b, "<!-- wp:heading {\"level\":2,\"className\":\"menu-dia-title\"} -->\n<h2 class=\"menu-dia-title\">%s</h2>\n<!-- /wp:heading -->\n\n",
		models.MenuTitle(payload.Language))

	fmt.Fprintf(&b, "<!-- wp:paragraph {\"className\":\"menu-dia-date\"} -->\n<p class=\"menu-dia-date\">%s</p>\n<!-- /wp:paragraph -->\n\n",
		html.EscapeString(payload.Date))

	writeSection(&b, models.FirstCoursesLabel(payload.Language), payload.FirstCourses)
	b.WriteString("\n")
	writeSection(&b, models.SecondCoursesLabel(payload.Language), payload.SecondCourses)

	b.WriteString("\n</div>\n<!-- /wp:group -->")
	return b.String()
}

func writeSection(b *strings.Builder, heading string, courses []string) {
	fmt.Fprintf(b, "<!-- wp:heading {\"level\":3,\"className\":\"menu-section-title\"} -->\n<h3 class=\"menu-section-title\">%s</h3>\n<!-- /wp:heading -->\n\n",
		heading)

	b.WriteString("<!-- wp:list {\"className\":\"menu-items\"} -->\n<ul class=\"menu-items\">")
	for _, course := range courses {
		fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(course))
	}
	b.WriteString("</ul>\n<!-- /wp:list -->\n")
}
