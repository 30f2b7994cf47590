package usertext

import "strings"

// htmlEscaper maps each byte escapeHTML rewrites to its character
// reference. Bytes without an entry pass through untouched.
var htmlEscaper = [256][]byte{
	'&':  []byte("&amp;"),
	'<':  []byte("&lt;"),
	'>':  []byte("&gt;"),
	'"':  []byte("&quot;"),
	'\'': []byte("&#39;"),
}

// escapeChars lists every byte that has an htmlEscaper entry; the fast
// path in escapeHTML relies on it being complete.
var escapeChars = escapeSet()

func escapeSet() string {
	var set []byte
	for c, seq := range htmlEscaper {
		if seq != nil {
			set = append(set, byte(c))
		}
	}
	return string(set)
}

// escapeHTML rewrites every occurrence of the escapeChars bytes in s
// as a character reference, in a single left-to-right pass. It is not
// recursive: references already present in s are escaped again, never
// trusted. The input is never modified.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, escapeChars) {
		return s
	}
	var out strings.Builder
	out.Grow(len(s) + 16)
	var start, end int
	for end < len(s) {
		if seq := htmlEscaper[s[end]]; seq != nil {
			out.WriteString(s[start:end])
			out.Write(seq)
			start = end + 1
		}
		end++
	}
	out.WriteString(s[start:])
	return out.String()
}
