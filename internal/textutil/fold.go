package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// FoldName returns the form names and queries are compared in: NFC composed,
// then lowercased with language-neutral rules.
//
// A fresh Caser is built per call because cases.Caser carries state and is
// not safe for concurrent use.
func FoldName(s string) string {
	if s == "" {
		return ""
	}
	if isLowerASCII(s) {
		return s
	}
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 || (b >= 'A' && b <= 'Z') {
			return false
		}
	}
	return true
}
