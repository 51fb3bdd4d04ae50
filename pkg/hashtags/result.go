package hashtags

import (
	"fmt"

	"github.com/dtnitsch/hashtags/models"
)

// Result records every occurrence of one normalized word: how many times it
// occurred, the documents it occurred in (first-seen order) and the sentences
// containing it.
type Result struct {
	word      string
	count     int
	documents []string
	seenDocs  map[string]struct{}
	sentences []string
}

func newResult(word string) *Result {
	return &Result{
		word:     word,
		seenDocs: make(map[string]struct{}),
	}
}

func (r *Result) Word() string { return r.word }
func (r *Result) Count() int   { return r.count }

// Documents returns a copy of the document names in first-seen order.
func (r *Result) Documents() []string {
	return append([]string{}, r.documents...)
}

// Sentences returns a copy of the recorded sentences.
func (r *Result) Sentences() []string {
	return append([]string{}, r.sentences...)
}

// AddOccurrence registers one more occurrence of the word in documentName
// and sentence.
//
// A sentence is not appended when it equals the last one recorded, so a word
// used twice in a sentence lists that sentence once. The same sentence text
// may still appear again later, e.g. when another document repeats it.
func (r *Result) AddOccurrence(documentName, sentence string) {
	r.count++

	if _, seen := r.seenDocs[documentName]; !seen {
		r.seenDocs[documentName] = struct{}{}
		r.documents = append(r.documents, documentName)
	}

	if n := len(r.sentences); n == 0 || r.sentences[n-1] != sentence {
		r.sentences = append(r.sentences, sentence)
	}
}

// WordResult returns the serializable form of the result.
func (r *Result) WordResult() models.WordResult {
	return models.WordResult{
		Word:      r.word,
		Count:     r.count,
		Documents: r.Documents(),
		Sentences: r.Sentences(),
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: %d occurrences, %d documents, %d sentences",
		r.word, r.count, len(r.documents), len(r.sentences))
}
