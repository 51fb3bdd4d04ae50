package manifest

import "github.com/dtnitsch/hashtags/models"

// SummaryManifest represents the structure of the run summary file.
// It gives an overview of a run (inputs, per-document contribution and top
// keywords) without reading the full report.
type SummaryManifest struct {
	RunID            string                `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	GeneratedAt      string                `json:"generated_at" yaml:"generated_at"`
	InputDir         string                `json:"input_dir" yaml:"input_dir"`
	ReportPath       string                `json:"report_path" yaml:"report_path"`
	ReportSizeBytes  int64                 `json:"report_size_bytes" yaml:"report_size_bytes"`
	TotalDocuments   int                   `json:"total_documents" yaml:"total_documents"`
	DistinctWords    int                   `json:"distinct_words" yaml:"distinct_words"`
	TotalOccurrences int                   `json:"total_occurrences" yaml:"total_occurrences"`
	StopWordCount    int                   `json:"stop_word_count" yaml:"stop_word_count"`
	TopKeywords      []string              `json:"top_keywords" yaml:"top_keywords"`
	Documents        []models.DocumentStat `json:"documents" yaml:"documents"`
}
