package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dtnitsch/hashtags/internal/count"
	"github.com/dtnitsch/hashtags/internal/history"
	"github.com/dtnitsch/hashtags/internal/setup"
	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "hashtags",
		Usage:     "Report how often words occur across a directory of text documents",
		UsageText: "hashtags [flags] <input_dir> <output_filename>\n\nFlags must come before <input_dir>.",
		ErrWriter: os.Stderr,
		Flags:     countFlags(),
		Action:    count.CountAction,
		Commands: []*cli.Command{
			{
				Name:  "quickstart",
				Usage: "Print a quick start guide as YAML",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:   "setup",
				Usage:  "Install bundled punkt sentence tokenizer training data",
				Action: setup.SetupAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "punkt-data",
						Usage:   "Directory to install training data into",
						EnvVars: []string{models.EnvPunktData},
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Training data language",
						Value: models.DefaultLanguage,
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "List recorded runs",
				Action: history.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to show (0 for all)",
						Value: 20,
					},
					dbFlag(),
				},
			},
			{
				Name:      "run",
				Usage:     "Show a recorded run (latest when no ID is given)",
				ArgsUsage: "[run_id]",
				Action:    history.RunAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of top words to show (0 for all)",
						Value: 10,
					},
					dbFlag(),
				},
			},
			{
				Name:      "word",
				Usage:     "Show a word's counts across recorded runs",
				ArgsUsage: "<word>",
				Action:    history.WordAction,
				Flags:     []cli.Flag{dbFlag()},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "Run history database path (default: hashtags.db next to the binary)",
	}
}

func countFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "disable-default-stop-words",
			Aliases: []string{"d"},
			Usage:   "Do not use the built-in English stop word list",
		},
		&cli.StringFlag{
			Name:    "stop-words-file",
			Aliases: []string{"s"},
			Usage:   "File of comma-separated stop words to add",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file",
		},
		&cli.StringFlag{
			Name:    "punkt-data",
			Usage:   "Directory holding punkt training data",
			EnvVars: []string{models.EnvPunktData},
		},
		&cli.StringFlag{
			Name:  "language",
			Usage: "Sentence tokenizer language",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Report format: json or yaml",
		},
		&cli.BoolFlag{
			Name:  "include-html",
			Usage: "Also count .html and .htm documents",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "Detect each document's language and warn on tokenizer mismatch",
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: "Write a run summary manifest to this path (.yaml or .json)",
		},
		&cli.BoolFlag{
			Name:  "record",
			Usage: "Record the run in the history database",
		},
		dbFlag(),
		&cli.IntFlag{
			Name:  "top",
			Usage: "Print the top N words to stderr",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
	}
}
