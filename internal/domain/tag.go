package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTag converts raw user input into the canonical tag form used
// everywhere a tag is stored or compared: surrounding whitespace trimmed,
// NFC-composed, first rune upper case and the remainder lower case.
//
//	"  nature " -> "Nature"
//	"STREET art" -> "Street art"
//
// An input that is blank after trimming yields "", which callers must reject.
func NormalizeTag(raw string) string {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(s)
	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(first))
	b.WriteString(strings.ToLower(s[size:]))
	return norm.NFC.String(b.String())
}
