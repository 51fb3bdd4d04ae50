package report

import (
	"fmt"
	"io"

	"github.com/dtnitsch/hashtags/models"
)

// limit clamps n to the number of available results.
func limit(results []models.WordResult, n int) int {
	if n > len(results) {
		n = len(results)
	}
	if n < 0 {
		n = 0
	}
	return n
}

// TopKeywords returns the first n results as "word:count" strings
// (e.g., "learning:1153"). results must already be sorted.
func TopKeywords(results []models.WordResult, n int) []string {
	n = limit(results, n)
	keywords := make([]string, n)
	for i := 0; i < n; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", results[i].Word, results[i].Count)
	}
	return keywords
}

// PrintTopKeywords writes the first n results as a numbered list.
func PrintTopKeywords(w io.Writer, results []models.WordResult, n int) {
	n = limit(results, n)
	for i := 0; i < n; i++ {
		r := results[i]
		fmt.Fprintf(w, "%d. %s: %d (%d documents)\n", i+1, r.Word, r.Count, len(r.Documents))
	}
}
