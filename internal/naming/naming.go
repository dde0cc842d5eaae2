package naming

import (
	"strings"
	"unicode"
)

// Normalize converts a snake/kebab-case catalog identifier into Pascal
// case, or camel case when startLower is set. Runs of '_' and '-' are
// treated as word separators and removed. Within a word, a letter that
// follows a non-letter is upper-cased and every other letter is
// lower-cased, so digits also start a new word ("user2id" -> "User2Id").
// Other characters pass through untouched.
func Normalize(name string, startLower bool) string {
	var b strings.Builder
	b.Grow(len(name))

	prevLetter := false
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			prevLetter = false
		case unicode.IsLetter(r):
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		default:
			b.WriteRune(r)
			prevLetter = false
		}
	}

	out := b.String()
	if startLower && out != "" {
		runes := []rune(out)
		runes[0] = unicode.ToLower(runes[0])
		return string(runes)
	}
	return out
}
