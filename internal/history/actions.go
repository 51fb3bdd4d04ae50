package history

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/hashtags/internal/common"
	"github.com/dtnitsch/hashtags/pkg/textutil"
	"github.com/urfave/cli/v2"
)

const timeLayout = "2006-01-02 15:04:05"

// RunsAction lists recorded runs, newest first.
func RunsAction(c *cli.Context) error {
	database, err := common.OpenHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-6s %-8s %-8s %-10s %-30s\n",
		"ID", "Created", "Docs", "Words", "Total", "Language", "Input Dir")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for _, r := range runs {
		fmt.Fprintf(w, "%-6d %-20s %-6d %-8d %-8d %-10s %-30s\n",
			r.RunID,
			r.CreatedAt.Format(timeLayout),
			r.DocumentCount,
			r.DistinctWords,
			r.TotalOccurrences,
			r.Language,
			r.InputDir,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'hashtags run <id>' to see details\n")
	return nil
}

// RunAction shows one run (the latest when no ID is given) with its documents
// and top words.
func RunAction(c *cli.Context) error {
	database, err := common.OpenHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := common.RunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	docs, err := database.GetRunDocuments(runID)
	if err != nil {
		return err
	}
	words, err := database.GetRunWords(runID, c.Int("top"))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Run %d (%s)\n", run.RunID, run.RunUUID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Created:     %s\n", run.CreatedAt.Format(timeLayout))
	fmt.Fprintf(w, "Input:       %s\n", run.InputDir)
	fmt.Fprintf(w, "Report:      %s\n", run.ReportPath)
	fmt.Fprintf(w, "Words:       %d distinct, %d total\n", run.DistinctWords, run.TotalOccurrences)
	fmt.Fprintf(w, "Stop words:  %d\n", run.StopWordCount)

	fmt.Fprintf(w, "\nDocuments (%d):\n", len(docs))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, d := range docs {
		lang := d.Language
		if lang == "" {
			lang = "-"
		}
		fmt.Fprintf(w, "%2d. %s\n", i+1, d.Name)
		fmt.Fprintf(w, "    Sentences: %d | Words: %d | Size: %d bytes | Language: %s\n",
			d.Sentences, d.Words, d.SizeBytes, lang)
	}

	if len(words) > 0 {
		fmt.Fprintf(w, "\nTop words (%d):\n", len(words))
		fmt.Fprintln(w, strings.Repeat("-", 60))
		for _, wc := range words {
			fmt.Fprintf(w, "%2d. %s: %d (%d documents, %d sentences)\n",
				wc.Rank, wc.Word, wc.Count, wc.DocumentCount, wc.SentenceCount)
		}
	}
	return nil
}

// WordAction shows how often a word was counted across recorded runs.
func WordAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected <word>", 2)
	}
	word := textutil.NormalizeWord(c.Args().First())

	database, err := common.OpenHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	history, err := database.GetWordHistory(word)
	if err != nil {
		return fmt.Errorf("failed to get word history: %w", err)
	}

	w := c.App.Writer
	if len(history) == 0 {
		fmt.Fprintf(w, "No runs counted %q\n", word)
		return nil
	}

	fmt.Fprintf(w, "%-6s %-6s %-8s %-10s\n", "Run", "Rank", "Count", "Documents")
	fmt.Fprintln(w, strings.Repeat("-", 34))
	for _, wc := range history {
		fmt.Fprintf(w, "%-6d %-6d %-8d %-10d\n", wc.RunID, wc.Rank, wc.Count, wc.DocumentCount)
	}
	return nil
}
