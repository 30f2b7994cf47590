package main

import (
	"html/template"
	"strings"
)

// wrapPage turns a rendered fragment into a minimal standalone page.
// Title and stylesheet location come from flags rather than user text,
// but are escaped all the same.
func wrapPage(markup, title, css string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <title>")
	b.WriteString(template.HTMLEscapeString(title))
	b.WriteString("</title>\n")
	if css != "" {
		b.WriteString("  <link rel=\"stylesheet\" href=\"")
		b.WriteString(template.HTMLEscapeString(css))
		b.WriteString("\">\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(markup)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
