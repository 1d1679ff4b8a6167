// Package tags derives group labels from the free-text note attached to
// a transaction. A note line is a tag line iff its very first character
// is '#'; indentation before the '#' disqualifies the line. Each tag
// line yields exactly one tag regardless of how many words or '#'
// characters it contains.
package tags

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extract returns the ordered tags found in note. Order follows the
// source lines and duplicates are preserved; downstream grouping relies
// on exact string equality of the result.
func Extract(note string) []string {
	if note == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(note, "\n") {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ReplaceAll(line, "#", "")
		words := strings.Fields(line)
		for i, w := range words {
			words[i] = capitalize(w)
		}
		out = append(out, strings.Join(words, " "))
	}
	return out
}

// CleanNote removes every tag line from note and trims the remainder.
// The tag-line test is the same first-character check Extract uses.
func CleanNote(note string) string {
	if note == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(note, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// capitalize upper-cases the leading rune only; the rest of the word is
// left untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
