// Package sanitize normalizes provider-supplied text before it is sent
// to downstream APIs or persisted.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Text cleans s so that it is safe to embed in API requests: control
// characters stripped, exotic separators replaced with plain spaces,
// BOM and noncharacter code points removed, whitespace runs collapsed,
// then NFC normalization. If the result does not survive a UTF-8 round
// trip the function degrades to ASCII-only output.
// Applying Text twice yields the same output as applying it once.
func Text(s string) string {
	// NFC must run after stripping: removing a control character can
	// bring a combining mark next to its base letter, and only a
	// composition pass after that reaches the fixpoint.
	cleaned := norm.NFC.String(clean(s))
	if !utf8.ValidString(cleaned) {
		return asciiOnly(cleaned)
	}
	return cleaned
}

func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isControl(r), isNoncharacter(r), r == '\uFEFF':
			// dropped
		case unicode.IsSpace(r), unicode.Is(unicode.Z, r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return collapseSpaces(b.String())
}

// isControl covers C0 and C1 control ranges plus DEL
func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7F && r <= 0x9F)
}

// isNoncharacter reports Unicode noncharacter code points
// (U+FDD0..U+FDEF and the last two code points of every plane).
func isNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	return r&0xFFFE == 0xFFFE
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func asciiOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c < 0x7F {
			b.WriteByte(c)
		}
	}
	return collapseSpaces(b.String())
}
