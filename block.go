//
// Usertext Markup Renderer
// Available at http://github.com/threadview/usertext
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Line-oriented assembly of block-level elements.
//

package usertext

import "strings"

// lineMode identifies the block construct currently open. Exactly one
// construct is open at any moment; all transitions go through
// (*assembler).line and (*assembler).closeBlock.
type lineMode int

const (
	modeNone lineMode = iota
	modeParagraph
	modeList
	modeQuote
	modeCode
)

// codeIndent is the literal prefix that marks a code line.
const codeIndent = "    "

// codePrefix returns the number of indent bytes to strip when line
// belongs to a code block, 0 otherwise.
func codePrefix(line string) int {
	if strings.HasPrefix(line, codeIndent) {
		return len(codeIndent)
	}
	return 0
}

// listPrefix returns the number of marker bytes to strip when line
// opens or continues a list item, 0 otherwise. The marker is the exact
// two bytes "* "; a bare asterisk is emphasis, not a list.
func listPrefix(line string) int {
	if strings.HasPrefix(line, "* ") {
		return 2
	}
	return 0
}

// quotePrefix returns the number of marker bytes to strip when line
// belongs to a blockquote, 0 otherwise. The marker is the exact two
// bytes "> ".
func quotePrefix(line string) int {
	if strings.HasPrefix(line, "> ") {
		return 2
	}
	return 0
}

// isBlank reports whether line contains nothing but whitespace. It is
// only consulted after the code prefix check, so an all-space line
// carrying the indent still counts as code.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// assembler accumulates finished markup fragments while tracking which
// block construct is open. Fragments are only ever appended, and are
// joined exactly once by markup.
type assembler struct {
	mode  lineMode
	frags []string
}

func (a *assembler) emit(frag string) {
	a.frags = append(a.frags, frag)
}

// open closes whatever construct is active, emits the opening tag for
// the next one and records the new mode.
func (a *assembler) open(tag string, mode lineMode) {
	a.closeBlock()
	a.emit(tag)
	a.mode = mode
}

// closeBlock terminates the open construct, if any, and returns the
// machine to modeNone. Safe to call when nothing is open.
func (a *assembler) closeBlock() {
	switch a.mode {
	case modeParagraph:
		a.emit("</p>")
	case modeList:
		a.emit("</ul>")
	case modeQuote:
		a.emit("</blockquote>")
	case modeCode:
		a.emit("</code></pre>")
	}
	a.mode = modeNone
}

// line consumes a single input line. Classification is first match
// wins: code indent, then list marker, then quote marker, then blank,
// and only then paragraph text.
func (a *assembler) line(s string) {
	if n := codePrefix(s); n > 0 {
		if a.mode != modeCode {
			a.open("<pre><code>", modeCode)
		}
		a.emit(escapeHTML(s[n:]) + "\n")
		return
	}

	if n := listPrefix(s); n > 0 {
		if a.mode != modeList {
			a.open("<ul>", modeList)
		}
		a.emit("<li>" + renderInline(s[n:]) + "</li>")
		return
	}

	if n := quotePrefix(s); n > 0 {
		if a.mode != modeQuote {
			a.open("<blockquote>", modeQuote)
		}
		a.emit(renderInline(s[n:]) + "<br>")
		return
	}

	if isBlank(s) {
		a.closeBlock()
		return
	}

	// paragraph text; continuation lines are joined with a newline,
	// which renders as a space
	if a.mode != modeParagraph {
		a.open("<p>", modeParagraph)
	} else {
		a.emit("\n")
	}
	a.emit(renderInline(s))
}

// markup closes any construct still open and joins the accumulated
// fragments.
func (a *assembler) markup() string {
	a.closeBlock()
	return strings.Join(a.frags, "")
}
