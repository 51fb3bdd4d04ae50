package count

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/db"
	"github.com/dtnitsch/hashtags/pkg/source"
	"github.com/dtnitsch/hashtags/pkg/stopwords"
	"github.com/dtnitsch/hashtags/pkg/textutil"
)

const emptyTraining = `{"AbbrevTypes":{},"Collocations":{},"SentStarters":{},"OrthoContext":{}}`

type fixture struct {
	cfg      *models.Config
	inputDir string
	outDir   string
}

func setupFixture(t *testing.T, docs map[string]string) *fixture {
	t.Helper()

	root := t.TempDir()
	punkt := filepath.Join(root, "punkt")
	input := filepath.Join(root, "docs")
	for _, dir := range []string{punkt, input} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(punkt, "english.json"), []byte(emptyTraining), 0644); err != nil {
		t.Fatal(err)
	}
	for name, text := range docs {
		if err := os.WriteFile(filepath.Join(input, name), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := models.DefaultConfig()
	cfg.Tokenizer.DataPath = punkt
	return &fixture{cfg: cfg, inputDir: input, outDir: root}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fixture) run(t *testing.T) (*Outcome, string) {
	t.Helper()
	out := filepath.Join(f.outDir, "out.json")
	outcome, err := Run(f.cfg, f.inputDir, out, discardLogger(), io.Discard)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return outcome, out
}

func readReport(t *testing.T, path string) models.Report {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	var r models.Report
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	return r
}

func wordResult(r models.Report, word string) (models.WordResult, bool) {
	for _, w := range r.Results {
		if w.Word == word {
			return w, true
		}
	}
	return models.WordResult{}, false
}

func TestRun_WithoutStopWords(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "The cat sat. The cat ran."})
	f.cfg.StopWords.DisableDefaults = true

	_, path := f.run(t)
	r := readReport(t, path)

	if len(r.StopWords) != 0 {
		t.Errorf("StopWords = %q, want none", r.StopWords)
	}
	if r.Results[0].Word != "cat" || r.Results[1].Word != "the" {
		t.Errorf("first results = %s, %s; want cat, the", r.Results[0].Word, r.Results[1].Word)
	}
	for _, word := range []string{"the", "cat"} {
		w, ok := wordResult(r, word)
		if !ok {
			t.Fatalf("%q missing from report", word)
		}
		if w.Count != 2 {
			t.Errorf("%s Count = %d, want 2", word, w.Count)
		}
		if !reflect.DeepEqual(w.Documents, []string{"doc1.txt"}) {
			t.Errorf("%s Documents = %q", word, w.Documents)
		}
		if !reflect.DeepEqual(w.Sentences, []string{"The cat sat.", "The cat ran."}) {
			t.Errorf("%s Sentences = %q", word, w.Sentences)
		}
	}
}

func TestRun_StopWordsFile(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "The cat sat. The cat ran."})
	stopFile := filepath.Join(f.outDir, "stop.txt")
	if err := os.WriteFile(stopFile, []byte("the"), 0644); err != nil {
		t.Fatal(err)
	}
	f.cfg.StopWords.DisableDefaults = true
	f.cfg.StopWords.File = stopFile

	_, path := f.run(t)
	r := readReport(t, path)

	if _, ok := wordResult(r, "the"); ok {
		t.Error("stop word \"the\" present in report")
	}
	for _, word := range []string{"cat", "sat", "ran"} {
		if _, ok := wordResult(r, word); !ok {
			t.Errorf("%q missing from report", word)
		}
	}
	if !reflect.DeepEqual(r.StopWords, []string{"the"}) {
		t.Errorf("StopWords = %q, want [the]", r.StopWords)
	}
}

func TestRun_DefaultStopWords(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "The cat sat on the mat. It was a good mat."})

	outcome, path := f.run(t)
	r := readReport(t, path)

	stop := make(map[string]bool)
	for _, w := range r.StopWords {
		stop[w] = true
	}
	if !stop["the"] || !stop["on"] {
		t.Error("default stop words missing from report")
	}
	for _, w := range r.Results {
		if stop[w.Word] {
			t.Errorf("stop word %q present in results", w.Word)
		}
	}
	if w, ok := wordResult(r, "mat"); !ok || w.Count != 2 {
		t.Errorf("mat = %+v, want Count 2", w)
	}
	if outcome.RunID != 0 || outcome.Summary != nil {
		t.Error("history or summary produced without being enabled")
	}
}

func TestRun_AcrossDocuments(t *testing.T) {
	f := setupFixture(t, map[string]string{
		"doc1.txt": "Apple pie.",
		"doc2.txt": "apple Pie!",
		"skip.md":  "Apple apple apple.",
	})
	f.cfg.StopWords.DisableDefaults = true

	outcome, path := f.run(t)
	r := readReport(t, path)

	for _, word := range []string{"apple", "pie"} {
		w, ok := wordResult(r, word)
		if !ok {
			t.Fatalf("%q missing", word)
		}
		if w.Count != 2 || !reflect.DeepEqual(w.Documents, []string{"doc1.txt", "doc2.txt"}) {
			t.Errorf("%s = %+v", word, w)
		}
	}

	want := []models.DocumentStat{
		{Name: "doc1.txt", Sentences: 1, Words: 2, SizeBytes: 10},
		{Name: "doc2.txt", Sentences: 1, Words: 2, SizeBytes: 10},
	}
	if !reflect.DeepEqual(outcome.Documents, want) {
		t.Errorf("Documents = %+v, want %+v", outcome.Documents, want)
	}
}

func TestRun_RepeatedWord(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "Run run away."})
	f.cfg.StopWords.DisableDefaults = true

	_, path := f.run(t)
	w, ok := wordResult(readReport(t, path), "run")
	if !ok {
		t.Fatal("run missing")
	}
	if w.Count != 2 || !reflect.DeepEqual(w.Sentences, []string{"Run run away."}) {
		t.Errorf("run = %+v", w)
	}
}

func TestRun_YAMLFormat(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "Apple pie."})
	f.cfg.Output.Format = "yaml"

	_, path := f.run(t)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Word: apple") {
		t.Errorf("YAML report = %q", data)
	}
}

func TestRun_TopWordsToConsole(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "Apple pie. Apple tart."})
	f.cfg.Output.Top = 1

	var console bytes.Buffer
	if _, err := Run(f.cfg, f.inputDir, filepath.Join(f.outDir, "out.json"), discardLogger(), &console); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(console.String(), "1. apple: 2 (1 documents)") {
		t.Errorf("console = %q", console.String())
	}
}

func TestRun_RecordAndSummary(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "Apple pie. Apple tart."})
	f.cfg.History.Enabled = true
	f.cfg.History.Path = filepath.Join(f.outDir, "history.db")
	f.cfg.Output.Summary = filepath.Join(f.outDir, "summary.json")

	outcome, _ := f.run(t)
	if outcome.RunID == 0 || outcome.RunUUID == "" {
		t.Fatalf("run not recorded: %+v", outcome)
	}
	if outcome.Summary == nil || outcome.Summary.RunID != outcome.RunUUID {
		t.Errorf("summary = %+v", outcome.Summary)
	}
	if _, err := os.Stat(f.cfg.Output.Summary); err != nil {
		t.Errorf("summary file missing: %v", err)
	}

	database, err := db.Open(f.cfg.History.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()
	words, err := database.GetRunWords(outcome.RunID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 1 || words[0].Word != "apple" || words[0].Count != 2 {
		t.Errorf("recorded words = %+v", words)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(f *fixture)
		docs      map[string]string
		stopWords string
		wantErr   error
	}{
		{
			name:    "tokenizer data unset",
			modify:  func(f *fixture) { f.cfg.Tokenizer.DataPath = "" },
			wantErr: textutil.ErrDataPathUnset,
		},
		{
			name:    "missing training file",
			modify:  func(f *fixture) { f.cfg.Tokenizer.Language = "dutch" },
			wantErr: textutil.ErrTrainingData,
		},
		{
			name:    "missing input directory",
			modify:  func(f *fixture) { f.inputDir = filepath.Join(f.outDir, "missing") },
			wantErr: os.ErrNotExist,
		},
		{
			name:    "missing stop words file",
			modify:  func(f *fixture) { f.cfg.StopWords.File = filepath.Join(f.outDir, "missing.txt") },
			wantErr: os.ErrNotExist,
		},
		{
			name:      "invalid stop words encoding",
			stopWords: "foo,\xff\xfebar",
			wantErr:   stopwords.ErrDecode,
		},
		{
			name:    "invalid encoding",
			docs:    map[string]string{"bad.txt": "caf\xe9"},
			wantErr: source.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := tt.docs
			if docs == nil {
				docs = map[string]string{"doc1.txt": "Apple pie."}
			}
			f := setupFixture(t, docs)
			if tt.modify != nil {
				tt.modify(f)
			}
			if tt.stopWords != "" {
				f.cfg.StopWords.File = filepath.Join(f.outDir, "stop.txt")
				if err := os.WriteFile(f.cfg.StopWords.File, []byte(tt.stopWords), 0644); err != nil {
					t.Fatal(err)
				}
			}

			out := filepath.Join(f.outDir, "out.json")
			_, err := Run(f.cfg, f.inputDir, out, discardLogger(), io.Discard)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(out); statErr == nil {
				t.Error("report written despite error")
			}
		})
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	f := setupFixture(t, map[string]string{"doc1.txt": "Apple pie."})
	blocker := filepath.Join(f.outDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(f.cfg, f.inputDir, filepath.Join(blocker, "out.json"), discardLogger(), io.Discard); err == nil {
		t.Error("Run() error = nil, want write error")
	}
}

func TestRun_DetectLanguage(t *testing.T) {
	f := setupFixture(t, map[string]string{
		"en.txt": "The quick brown fox jumps over the lazy dog while the children are playing happily in the garden behind the house.",
		"fr.txt": "Le renard brun rapide saute par-dessus le chien paresseux pendant que les enfants jouent joyeusement dans le jardin derrière la maison.",
	})
	f.cfg.Sources.DetectLanguage = true

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	outcome, err := Run(f.cfg, f.inputDir, filepath.Join(f.outDir, "out.json"), logger, io.Discard)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(outcome.Documents) != 2 {
		t.Fatalf("Documents = %+v, want 2", outcome.Documents)
	}
	if got := outcome.Documents[0].Language; got != "english" {
		t.Errorf("en.txt Language = %q, want english", got)
	}
	if got := outcome.Documents[1].Language; got != "french" {
		t.Errorf("fr.txt Language = %q, want french", got)
	}
	for _, d := range outcome.Documents {
		if d.SizeBytes == 0 {
			t.Errorf("%s SizeBytes = 0", d.Name)
		}
	}

	out := logs.String()
	if !strings.Contains(out, "Document language differs from tokenizer language") || !strings.Contains(out, `"document":"fr.txt"`) {
		t.Errorf("mismatch warning missing for fr.txt: %s", out)
	}
	if strings.Contains(out, `"document":"en.txt"`) {
		t.Errorf("unexpected mismatch warning for en.txt: %s", out)
	}
}

func TestRun_LanguageOffByDefault(t *testing.T) {
	f := setupFixture(t, map[string]string{"en.txt": "The quick brown fox jumps over the lazy dog."})

	outcome, _ := f.run(t)
	if got := outcome.Documents[0].Language; got != "" {
		t.Errorf("Language = %q, want empty without detection", got)
	}
}

func TestCheckArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"two positionals", []string{"docs", "out.json"}, ""},
		{"missing output", []string{"docs"}, "expected <input_dir> and <output_filename>"},
		{"too many", []string{"docs", "out.json", "extra"}, "expected <input_dir> and <output_filename>"},
		{"trailing short flag", []string{"docs", "out.json", "-d"}, "flag -d must come before"},
		{"trailing long flag", []string{"docs", "out.json", "--stop-words-file", "s.txt"}, "flag --stop-words-file must come before"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkArgs(tt.args)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("checkArgs() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("checkArgs() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
