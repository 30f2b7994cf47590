//
// Usertext Markup Renderer
// Available at http://github.com/threadview/usertext
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Helper functions for unit testing
//

package usertext

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// doTests runs the full render pipeline over paired input/expected
// strings.
func doTests(t *testing.T, tests []string) {
	t.Helper()

	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while rendering [%#v]: %v\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual := string(Render(candidate))
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]%s",
				candidate, expected, actual, unifiedDiff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					_ = Render(candidate)
				}
			}
		}
	}
}

// doSafeURLTests checks the attribute sanitizer over paired
// candidate/expected strings.
func doSafeURLTests(t *testing.T, tests []string) {
	t.Helper()

	for i := 0; i+1 < len(tests); i += 2 {
		if actual := safeURL(tests[i]); actual != tests[i+1] {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]",
				tests[i], tests[i+1], actual)
		}
	}
}

// unifiedDiff renders a diff for multi-line mismatches. Single-line
// outputs read fine from the quoted dump alone.
func unifiedDiff(expected, actual string) string {
	if !strings.Contains(expected, "\n") && !strings.Contains(actual, "\n") {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return "\nDiff:\n" + diff
}
