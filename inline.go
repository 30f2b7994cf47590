//
// Usertext Markup Renderer
// Available at http://github.com/threadview/usertext
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Inline formatting within a single line.
//

package usertext

import "regexp"

// The inline pipeline is order-significant. The whole line is escaped
// before any matching, so the patterns below only ever see escaped
// text. Links run first so their targets are claimed before the
// emphasis passes can touch them, and bold runs before italic so a
// double marker is never consumed as two singles.
var (
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strongPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emphPattern   = regexp.MustCompile(`\*(.+?)\*`)
	delPattern    = regexp.MustCompile(`~~(.+?)~~`)
	supPattern    = regexp.MustCompile(`(\w+)\^(\w+)`)
)

// renderInline converts one line of raw user text to inline markup.
// Unpaired or malformed markers survive as literal escaped text, never
// as an error.
func renderInline(line string) string {
	s := escapeHTML(line)
	s = linkPattern.ReplaceAllStringFunc(s, replaceLink)
	s = strongPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = emphPattern.ReplaceAllString(s, "<em>$1</em>")
	s = delPattern.ReplaceAllString(s, "<del>$1</del>")
	s = supPattern.ReplaceAllString(s, "$1<sup>$2</sup>")
	return s
}

// replaceLink rewrites one matched [label](target) as an anchor. The
// label was escaped along with the rest of the line and is emitted
// as-is. The target goes through safeURL before it reaches the href
// attribute, and every anchor opens in a new browsing context with
// both the opener reference and the referrer suppressed.
func replaceLink(match string) string {
	m := linkPattern.FindStringSubmatch(match)
	return `<a href="` + safeURL(m[2]) + `" target="_blank" rel="noopener noreferrer">` + m[1] + `</a>`
}
