// Package hashtags counts normalized words across documents and remembers the
// documents and sentences each word occurred in.
package hashtags

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/source"
	"github.com/dtnitsch/hashtags/pkg/stopwords"
	"github.com/dtnitsch/hashtags/pkg/textutil"
)

// SentenceSplitter segments document text into sentences.
// *textutil.Tokenizer is the production implementation.
type SentenceSplitter interface {
	SplitIntoSentences(text string) []string
}

// Creator builds Results from a fixed list of documents. It owns the
// word → Result map; callers only ever see copies.
//
// Processing order is document order, then sentence order, then word order.
// That order decides first-seen document order and sentence adjacency.
type Creator struct {
	documents []source.Document
	splitter  SentenceSplitter
	stopWords *stopwords.Set
	logger    *slog.Logger

	results map[string]*Result
	stats   []models.DocumentStat
}

// NewCreator returns a Creator over documents. A nil stopWords set filters
// nothing; a nil logger discards log output.
func NewCreator(documents []source.Document, splitter SentenceSplitter, stopWords *stopwords.Set, logger *slog.Logger) *Creator {
	if stopWords == nil {
		stopWords = stopwords.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Creator{
		documents: documents,
		splitter:  splitter,
		stopWords: stopWords,
		logger:    logger,
		results:   make(map[string]*Result),
	}
}

// AddOccurrence records word in documentName and sentence, creating the
// word's Result on first use. word must already be normalized and filtered.
func (c *Creator) AddOccurrence(word, documentName, sentence string) {
	result, ok := c.results[word]
	if !ok {
		result = newResult(word)
		c.results[word] = result
	}
	result.AddOccurrence(documentName, sentence)
}

// ProcessDocument counts every kept word of doc. A failure to read the
// document is returned unchanged apart from the document name.
func (c *Creator) ProcessDocument(doc source.Document) error {
	text, err := doc.Text()
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", doc.Name(), err)
	}

	stat := models.DocumentStat{Name: doc.Name()}
	for _, sentence := range c.splitter.SplitIntoSentences(text) {
		stat.Sentences++
		for _, raw := range textutil.SplitIntoWords(sentence) {
			word := textutil.NormalizeWord(raw)
			if word == "" || c.stopWords.Contains(word) {
				continue
			}
			c.AddOccurrence(word, doc.Name(), sentence)
			stat.Words++
		}
	}
	c.stats = append(c.stats, stat)

	c.logger.Debug("Processed document", "document", doc.Name(), "sentences", stat.Sentences, "words", stat.Words)
	return nil
}

// CreateHashtags processes every document in input order, stopping at the
// first document that cannot be read.
func (c *Creator) CreateHashtags() error {
	for _, doc := range c.documents {
		if err := c.ProcessDocument(doc); err != nil {
			return err
		}
	}
	c.logger.Info("Counted words", "documents", len(c.documents), "distinct_words", len(c.results))
	return nil
}

// Result returns the accumulator for a normalized word, if any.
func (c *Creator) Result(word string) (*Result, bool) {
	r, ok := c.results[word]
	return r, ok
}

// sortedResults orders results by count (descending), then word (ascending).
// Words are unique, so the order is total.
func (c *Creator) sortedResults() []*Result {
	out := make([]*Result, 0, len(c.results))
	for _, r := range c.results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].word < out[j].word
	})
	return out
}

// ResultsTable returns a sorted snapshot of all results.
func (c *Creator) ResultsTable() []models.WordResult {
	sorted := c.sortedResults()
	table := make([]models.WordResult, len(sorted))
	for i, r := range sorted {
		table[i] = r.WordResult()
	}
	return table
}

// Report returns the results table together with the stop words in effect.
func (c *Creator) Report() *models.Report {
	return &models.Report{
		StopWords: c.stopWords.Sorted(),
		Results:   c.ResultsTable(),
	}
}

// DocumentStats returns per-document counts for the documents processed so far.
func (c *Creator) DocumentStats() []models.DocumentStat {
	return append([]models.DocumentStat{}, c.stats...)
}
