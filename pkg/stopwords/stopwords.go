// Package stopwords holds the set of words excluded from counting.
package stopwords

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/hashtags/pkg/storage"
	"github.com/dtnitsch/hashtags/pkg/textutil"
)

// ErrDecode is returned when a stop-words file is not valid UTF-8.
var ErrDecode = errors.New("stop words file is not valid UTF-8")

// english is the standard English stop-word list used by punkt-based NLP
// toolkits. Entries are already normalized.
var english = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {},
	"ourselves": {}, "you": {}, "you're": {}, "you've": {}, "you'll": {},
	"you'd": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},

	"he": {}, "him": {}, "his": {}, "himself": {}, "she": {}, "she's": {},
	"her": {}, "hers": {}, "herself": {}, "it": {}, "it's": {}, "its": {},
	"itself": {}, "they": {}, "them": {}, "their": {}, "theirs": {},
	"themselves": {},

	"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {},
	"that'll": {}, "these": {}, "those": {},

	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "having": {}, "do": {},
	"does": {}, "did": {}, "doing": {},

	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {},
	"because": {}, "as": {}, "until": {}, "while": {}, "of": {}, "at": {},
	"by": {}, "for": {}, "with": {}, "about": {}, "against": {}, "between": {},
	"into": {}, "through": {}, "during": {}, "before": {}, "after": {},
	"above": {}, "below": {}, "to": {}, "from": {}, "up": {}, "down": {},
	"in": {}, "out": {}, "on": {}, "off": {}, "over": {}, "under": {},

	"again": {}, "further": {}, "then": {}, "once": {}, "here": {}, "there": {},
	"when": {}, "where": {}, "why": {}, "how": {}, "all": {}, "any": {},
	"both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {},
	"own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},

	"s": {}, "t": {}, "can": {}, "will": {}, "just": {}, "don": {}, "don't": {},
	"should": {}, "should've": {}, "now": {}, "d": {}, "ll": {}, "m": {},
	"o": {}, "re": {}, "ve": {}, "y": {},

	// Contraction stems and contractions
	"ain": {}, "aren": {}, "aren't": {}, "couldn": {}, "couldn't": {},
	"didn": {}, "didn't": {}, "doesn": {}, "doesn't": {}, "hadn": {},
	"hadn't": {}, "hasn": {}, "hasn't": {}, "haven": {}, "haven't": {},
	"isn": {}, "isn't": {}, "ma": {}, "mightn": {}, "mightn't": {},
	"mustn": {}, "mustn't": {}, "needn": {}, "needn't": {}, "shan": {},
	"shan't": {}, "shouldn": {}, "shouldn't": {}, "wasn": {}, "wasn't": {},
	"weren": {}, "weren't": {}, "won": {}, "won't": {}, "wouldn": {},
	"wouldn't": {},
}

// Set is a set of normalized stop words. It is built before a run and only
// read while counting.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from words, normalizing each entry and skipping any that
// normalize to the empty string.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	s.Add(words...)
	return s
}

// Default returns a Set holding the English stop-word list.
func Default() *Set {
	s := &Set{words: make(map[string]struct{}, len(english))}
	for w := range english {
		s.words[w] = struct{}{}
	}
	return s
}

// Add merges words into the set.
func (s *Set) Add(words ...string) {
	for _, w := range words {
		w = textutil.NormalizeWord(w)
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
}

// Merge adds every word of other into s.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for w := range other.words {
		s.words[w] = struct{}{}
	}
}

// Contains reports whether word is a stop word. word must already be
// normalized.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, exists := s.words[word]
	return exists
}

// Len returns the number of stop words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Sorted returns the stop words in ascending order.
func (s *Set) Sorted() []string {
	out := make([]string, 0, s.Len())
	if s == nil {
		return out
	}
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Parse splits comma-separated content into trimmed words.
func Parse(content string) []string {
	parts := strings.Split(content, ",")
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		words = append(words, part)
	}
	return words
}

// LoadFile reads a comma-separated, UTF-8 encoded stop-words file.
func LoadFile(path string) (*Set, error) {
	s := &storage.Storage{}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop words file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrDecode)
	}
	return New(Parse(string(data))...), nil
}

// Build assembles the effective stop-word set for a run: the default list
// unless disabled, plus the words in file (if any) and extra.
func Build(disableDefaults bool, file string, extra []string) (*Set, error) {
	set := New()
	if !disableDefaults {
		set = Default()
	}
	if file != "" {
		fromFile, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		set.Merge(fromFile)
	}
	set.Add(extra...)
	return set, nil
}
