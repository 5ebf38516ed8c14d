package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	reNonAllowed = regexp.MustCompile(`[^A-Za-z0-9\- ]+`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// NormalizeToken maps arbitrary text to its canonical token: periods become
// spaces, everything outside ASCII letters, digits, hyphen and space is
// dropped, whitespace runs collapse, and the result is trimmed and uppercased.
func NormalizeToken(input string) string {
	s := strings.ReplaceAll(input, ".", " ")
	s = reNonAllowed.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.ToUpper(strings.TrimSpace(s))
}

// MissingText is the text form of a missing cell.
const MissingText = "nan"

// ToText coerces a cell value to text. A missing value becomes MissingText.
func ToText(v any) string {
	switch t := v.(type) {
	case nil:
		return MissingText
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// TitleCase uppercases every letter that does not follow another letter and
// lowercases the rest. Non-letters are kept as is, so "AD-HOC 3RD" becomes
// "Ad-Hoc 3Rd".
func TitleCase(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	prevLetter := false
	for _, r := range input {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		prevLetter = false
		b.WriteRune(r)
	}
	return b.String()
}

func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func CleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}
