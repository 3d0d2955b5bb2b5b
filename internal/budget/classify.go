package budget

import "strings"

const (
	presentationMinLines  = 500
	presentationMinTokens = 2000
	standardMinLines      = 20
	standardMinTokens     = 300
)

// Keyword matching is a substring check over the lowercased path, so
// "app/ui/form.py" and "MainWindow.py" both qualify.
var presentationKeywords = []string{"ui", "screen", "window"}

// Extension matching is case-sensitive; "INDEX.HTML" does not qualify by
// extension.
var presentationExtensions = []string{".html", ".ui", ".xml", ".css"}

// Minimums are the acceptance floors enforced in strict mode.
type Minimums struct {
	Lines  int
	Tokens int
}

// IsPresentationFile reports whether the path looks like a presentation-layer
// file: its lowercased path contains a presentation keyword, or it ends in a
// markup/stylesheet extension.
func IsPresentationFile(path string) bool {
	lower := strings.ToLower(path)
	for _, keyword := range presentationKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	for _, ext := range presentationExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// MinimumsFor returns the strict-mode floors for a path. Presentation files
// must come back substantial; everything else only has to be non-trivial.
func MinimumsFor(path string) Minimums {
	if IsPresentationFile(path) {
		return Minimums{Lines: presentationMinLines, Tokens: presentationMinTokens}
	}
	return Minimums{Lines: standardMinLines, Tokens: standardMinTokens}
}
