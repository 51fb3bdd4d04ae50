// Package textutil splits document text into sentences and words and
// normalizes word tokens for counting.
package textutil

import (
	"strings"
	"unicode"
)

// asciiPunctuation is trimmed in addition to unicode.IsPunct, which does not
// cover symbols such as $, +, <, =, >, ^, `, | and ~.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var quoteReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// SplitIntoWords splits a sentence on literal spaces. Runs of spaces produce
// empty tokens; NormalizeWord maps them to "" and callers drop them.
func SplitIntoWords(sentence string) []string {
	if sentence == "" {
		return []string{}
	}
	return strings.Split(sentence, " ")
}

// NormalizeWord canonicalizes typographic quotes, trims punctuation and
// whitespace from both ends, and lowercases. The result may be empty.
func NormalizeWord(word string) string {
	word = quoteReplacer.Replace(word)
	word = strings.TrimFunc(word, isTrimmable)
	return strings.ToLower(word)
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || strings.ContainsRune(asciiPunctuation, r)
}
