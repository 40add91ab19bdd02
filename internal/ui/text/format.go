package text

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first letter only: "dev" -> "Dev".
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Handle formats a skill name the way prompts reference it: "@name".
func Handle(name string) string {
	return "@" + name
}

// Showing formats the listing counter: "12 skills", or "3 of 12 skills" when filtered.
func Showing(shown, total int) string {
	noun := "skills"
	if total == 1 {
		noun = "skill"
	}
	if shown == total {
		return fmt.Sprintf("%d %s", total, noun)
	}
	return fmt.Sprintf("%d of %d %s", shown, total, noun)
}
