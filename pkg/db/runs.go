package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/hashtags/models"
	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID has no row.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded counting run.
type Run struct {
	RunID            int64
	RunUUID          string
	InputDir         string
	ReportPath       string
	Language         string
	DocumentCount    int
	DistinctWords    int
	TotalOccurrences int
	StopWordCount    int
	CreatedAt        time.Time
}

// WordCount is one word of a recorded run.
type WordCount struct {
	RunID         int64
	Rank          int
	Word          string
	Count         int
	DocumentCount int
	SentenceCount int
	Documents     []string
}

// RunRecord is everything persisted for a finished run.
type RunRecord struct {
	RunUUID    string // generated when empty
	InputDir   string
	ReportPath string
	Language   string
	Report     *models.Report
	Documents  []models.DocumentStat
}

// RecordRun stores a run, its documents and its word counts in one
// transaction and returns the run_id and run UUID.
func (db *DB) RecordRun(rec RunRecord) (int64, string, error) {
	if rec.Report == nil {
		return 0, "", fmt.Errorf("failed to record run: no report")
	}
	if rec.RunUUID == "" {
		rec.RunUUID = uuid.New().String()
	}

	total := 0
	for _, r := range rec.Report.Results {
		total += r.Count
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	result, err := tx.Exec(`
		INSERT INTO runs (run_uuid, input_dir, report_path, language, document_count, distinct_words, total_occurrences, stop_word_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.RunUUID, rec.InputDir, rec.ReportPath, nullString(rec.Language),
		len(rec.Documents), len(rec.Report.Results), total, len(rec.Report.StopWords))
	if err != nil {
		return 0, "", fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, "", fmt.Errorf("failed to get run ID: %w", err)
	}

	for i, d := range rec.Documents {
		_, err := tx.Exec(`
			INSERT INTO run_documents (run_id, position, name, sentences, words, size_bytes, language)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, i, d.Name, d.Sentences, d.Words, d.SizeBytes, nullString(d.Language))
		if err != nil {
			return 0, "", fmt.Errorf("failed to insert document %s: %w", d.Name, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO word_counts (run_id, rank, word, count, document_count, sentence_count, documents)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, "", fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rec.Report.Results {
		docs, err := json.Marshal(r.Documents)
		if err != nil {
			return 0, "", fmt.Errorf("failed to marshal documents for %s: %w", r.Word, err)
		}
		if _, err := stmt.Exec(runID, i+1, r.Word, r.Count, len(r.Documents), len(r.Sentences), string(docs)); err != nil {
			return 0, "", fmt.Errorf("failed to insert word %s: %w", r.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, rec.RunUUID, nil
}

const runColumns = `run_id, run_uuid, input_dir, report_path, language, document_count, distinct_words, total_occurrences, stop_word_count, created_at`

func scanRun(row interface{ Scan(...any) error }) (*Run, error) {
	var r Run
	var language sql.NullString
	if err := row.Scan(&r.RunID, &r.RunUUID, &r.InputDir, &r.ReportPath, &language,
		&r.DocumentCount, &r.DistinctWords, &r.TotalOccurrences, &r.StopWordCount, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Language = language.String
	return &r, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all runs.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY run_id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}
	return runs, rows.Err()
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	r, err := scanRun(db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// LatestRunID returns the most recently recorded run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRunNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// GetRunWords returns a run's words in report order. limit <= 0 returns all.
func (db *DB) GetRunWords(runID int64, limit int) ([]WordCount, error) {
	query := `
		SELECT run_id, rank, word, count, document_count, sentence_count, documents
		FROM word_counts
		WHERE run_id = ?
		ORDER BY rank`
	args := []any{runID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return db.queryWordCounts(query, args...)
}

// GetWordHistory returns the recorded counts of word across runs, oldest first.
func (db *DB) GetWordHistory(word string) ([]WordCount, error) {
	return db.queryWordCounts(`
		SELECT run_id, rank, word, count, document_count, sentence_count, documents
		FROM word_counts
		WHERE word = ?
		ORDER BY run_id`, word)
}

func (db *DB) queryWordCounts(query string, args ...any) ([]WordCount, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query word counts: %w", err)
	}
	defer rows.Close()

	var words []WordCount
	for rows.Next() {
		var w WordCount
		var docs string
		if err := rows.Scan(&w.RunID, &w.Rank, &w.Word, &w.Count, &w.DocumentCount, &w.SentenceCount, &docs); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		if err := json.Unmarshal([]byte(docs), &w.Documents); err != nil {
			return nil, fmt.Errorf("failed to decode documents for %s: %w", w.Word, err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// GetRunDocuments returns a run's documents in processing order.
func (db *DB) GetRunDocuments(runID int64) ([]models.DocumentStat, error) {
	rows, err := db.Query(`
		SELECT name, sentences, words, size_bytes, language
		FROM run_documents
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run documents: %w", err)
	}
	defer rows.Close()

	var docs []models.DocumentStat
	for rows.Next() {
		var d models.DocumentStat
		var language sql.NullString
		if err := rows.Scan(&d.Name, &d.Sentences, &d.Words, &d.SizeBytes, &language); err != nil {
			return nil, fmt.Errorf("failed to scan run document: %w", err)
		}
		d.Language = language.String
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
