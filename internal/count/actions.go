package count

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/hashtags/internal/common"
	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/db"
	"github.com/dtnitsch/hashtags/pkg/detector"
	"github.com/dtnitsch/hashtags/pkg/hashtags"
	"github.com/dtnitsch/hashtags/pkg/manifest"
	"github.com/dtnitsch/hashtags/pkg/report"
	"github.com/dtnitsch/hashtags/pkg/source"
	"github.com/dtnitsch/hashtags/pkg/stopwords"
	"github.com/dtnitsch/hashtags/pkg/storage"
	"github.com/dtnitsch/hashtags/pkg/textutil"
	"github.com/urfave/cli/v2"
)

// Outcome describes a finished run.
type Outcome struct {
	Report     *models.Report
	Documents  []models.DocumentStat
	ReportSize int64
	RunID      int64  // 0 unless the run was recorded
	RunUUID    string // empty unless the run was recorded
	Summary    *manifest.SummaryManifest
}

// CountAction is the root command: hashtags <input_dir> <output_filename>.
func CountAction(c *cli.Context) error {
	if err := checkArgs(c.Args().Slice()); err != nil {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(err.Error(), 2)
	}
	inputDir := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(c.App.ErrWriter, cfg.Logging.Level, c.Bool("quiet"))

	_, err = Run(cfg, inputDir, outputPath, logger, c.App.ErrWriter)
	return err
}

// checkArgs validates the positional arguments. Flag parsing stops at the
// first positional argument, so a trailing flag shows up here as an argument.
func checkArgs(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			return fmt.Errorf("flag %s must come before <input_dir> and <output_filename>", arg)
		}
	}
	if len(args) != 2 {
		return fmt.Errorf("expected <input_dir> and <output_filename>, got %d arguments", len(args))
	}
	return nil
}

// Run executes one counting run. Any error aborts the run; the report file is
// only written once every document has been processed.
func Run(cfg *models.Config, inputDir, outputPath string, logger *slog.Logger, console io.Writer) (*Outcome, error) {
	startTime := time.Now()
	if console == nil {
		console = os.Stderr
	}

	// Tokenizer resources are checked before any input is touched.
	tok, err := textutil.NewTokenizer(cfg.Tokenizer.DataPath, cfg.Tokenizer.Language)
	if err != nil {
		return nil, err
	}

	s := &storage.Storage{}
	docs, err := source.ListDir(inputDir, source.Options{IncludeHTML: cfg.Sources.IncludeHTML}, s)
	if err != nil {
		return nil, err
	}
	logger.Info("Found documents", "input_dir", inputDir, "count", len(docs))

	stop, err := stopwords.Build(cfg.StopWords.DisableDefaults, cfg.StopWords.File, cfg.StopWords.Extra)
	if err != nil {
		return nil, err
	}
	logger.Info("Using stop words", "count", stop.Len(), "defaults", !cfg.StopWords.DisableDefaults)

	var lang *detector.LanguageDetector
	if cfg.Sources.DetectLanguage {
		lang = detector.NewLanguageDetector()
	}
	tracked := track(docs, lang)

	creator := hashtags.NewCreator(tracked.documents(), tok, stop, logger)
	if err := creator.CreateHashtags(); err != nil {
		return nil, err
	}

	out := &Outcome{
		Report:    creator.Report(),
		Documents: tracked.annotate(creator.DocumentStats()),
	}
	warnLanguageMismatch(logger, out.Documents, tok.Language())

	out.ReportSize, err = report.Write(out.Report, outputPath, cfg.Output.Format, s)
	if err != nil {
		return nil, err
	}
	logger.Info("Report written", "path", outputPath, "format", cfg.Output.Format,
		"words", len(out.Report.Results), "size_bytes", out.ReportSize)

	if cfg.Output.Top > 0 {
		fmt.Fprintf(console, "--- Top %d Words ---\n", cfg.Output.Top)
		report.PrintTopKeywords(console, out.Report.Results, cfg.Output.Top)
	}

	if cfg.History.Enabled {
		if err := record(cfg, inputDir, outputPath, tok.Language(), out); err != nil {
			return nil, err
		}
		logger.Info("Run recorded", "run_id", out.RunID, "run_uuid", out.RunUUID)
	}

	if cfg.Output.Summary != "" {
		out.Summary, err = manifest.GenerateSummary(manifest.RunInfo{
			RunID:      out.RunUUID,
			InputDir:   inputDir,
			ReportPath: outputPath,
			Report:     out.Report,
			Documents:  out.Documents,
		}, cfg.Output.Summary, s)
		if err != nil {
			return nil, err
		}
		logger.Info("Summary manifest written", "path", cfg.Output.Summary)
	}

	logger.Info("Run complete", "duration", time.Since(startTime).String())
	return out, nil
}

func record(cfg *models.Config, inputDir, outputPath, language string, out *Outcome) error {
	database, err := db.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	out.RunID, out.RunUUID, err = database.RecordRun(db.RunRecord{
		InputDir:   inputDir,
		ReportPath: outputPath,
		Language:   language,
		Report:     out.Report,
		Documents:  out.Documents,
	})
	return err
}

func warnLanguageMismatch(logger *slog.Logger, docs []models.DocumentStat, tokenizerLanguage string) {
	for _, d := range docs {
		if d.Language != "" && d.Language != tokenizerLanguage {
			logger.Warn("Document language differs from tokenizer language",
				"document", d.Name, "detected", d.Language, "tokenizer", tokenizerLanguage)
		}
	}
}
