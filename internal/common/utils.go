package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dtnitsch/hashtags/models"
	dbpkg "github.com/dtnitsch/hashtags/pkg/db"
	"github.com/urfave/cli/v2"
)

// ParseLevel maps a config level name to a slog level; unknown names are Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a JSON logger on w. quiet forces the Error level.
func NewLogger(w io.Writer, level string, quiet bool) *slog.Logger {
	logLevel := ParseLevel(level)
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig loads the --config file (if any) and applies every CLI flag the
// user actually set on top of it.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("punkt-data") {
		cfg.Tokenizer.DataPath = c.String("punkt-data")
	}
	if c.IsSet("language") {
		cfg.Tokenizer.Language = c.String("language")
	}
	if c.Bool("disable-default-stop-words") {
		cfg.StopWords.DisableDefaults = true
	}
	if c.IsSet("stop-words-file") {
		cfg.StopWords.File = c.String("stop-words-file")
	}
	if c.IsSet("include-html") {
		cfg.Sources.IncludeHTML = c.Bool("include-html")
	}
	if c.IsSet("detect-language") {
		cfg.Sources.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}
	if c.IsSet("summary") {
		cfg.Output.Summary = c.String("summary")
	}
	if c.IsSet("record") {
		cfg.History.Enabled = c.Bool("record")
	}
	if c.IsSet("db") {
		cfg.History.Path = c.String("db")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenHistory opens the run history database named by --db, HASHTAGS_DB or
// the default location next to the binary.
func OpenHistory(c *cli.Context) (*dbpkg.DB, error) {
	path := c.String("db")
	if path == "" {
		path = os.Getenv(models.EnvHistoryDB)
	}
	database, err := dbpkg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// RunIDOrLatest returns the run ID given as the first argument, or the latest
// recorded run when no argument is given.
func RunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		runID, err := database.LatestRunID()
		if err != nil {
			return 0, fmt.Errorf("no runs found. Run 'hashtags --record <input_dir> <output_filename>' first: %w", err)
		}
		return runID, nil
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
