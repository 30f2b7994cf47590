//
// Usertext Markup Renderer
// Available at http://github.com/threadview/usertext
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

// Public interface

package usertext

import (
	"html/template"
	"strings"
)

// Render converts raw user text to display markup. It is the whole
// public surface of the package: there are no options, and behavior
// never varies between calls.
//
// Render is a pure function. It performs no I/O, logs nothing, and is
// safe for concurrent use; identical input always produces identical
// output, so callers rendering the same text repeatedly can memoize on
// the input string (the memo subpackage does exactly that).
//
// Empty input returns the empty string, never an empty container
// element, so callers can distinguish "nothing to show" from rendered
// content.
func Render(text string) template.HTML {
	if text == "" {
		return ""
	}
	a := new(assembler)
	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		a.line(line)
	}
	return template.HTML(a.markup())
}

// normalizeNewlines folds Windows and bare carriage-return line
// endings into plain newlines ahead of the line split.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
