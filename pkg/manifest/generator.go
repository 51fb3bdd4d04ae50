package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/report"
	"github.com/dtnitsch/hashtags/pkg/storage"
	"gopkg.in/yaml.v3"
)

// topKeywordCount is how many keywords a summary lists.
const topKeywordCount = 25

// RunInfo describes the run a summary is generated for.
type RunInfo struct {
	RunID      string
	InputDir   string
	ReportPath string
	Report     *models.Report
	Documents  []models.DocumentStat
}

// Build assembles a summary manifest for a finished run. Report file sizes
// are filled in from the storage layer when the report exists.
func Build(info RunInfo, s *storage.Storage) *SummaryManifest {
	m := &SummaryManifest{
		RunID:          info.RunID,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		InputDir:       info.InputDir,
		ReportPath:     info.ReportPath,
		TotalDocuments: len(info.Documents),
		Documents:      append([]models.DocumentStat{}, info.Documents...),
		TopKeywords:    []string{},
	}

	if info.Report != nil {
		m.DistinctWords = len(info.Report.Results)
		m.StopWordCount = len(info.Report.StopWords)
		m.TopKeywords = report.TopKeywords(info.Report.Results, topKeywordCount)
		for _, r := range info.Report.Results {
			m.TotalOccurrences += r.Count
		}
	}

	if s != nil && info.ReportPath != "" {
		if stats, err := s.GetFileStats(info.ReportPath); err == nil {
			m.ReportSizeBytes = stats.SizeBytes
		}
	}
	return m
}

// GenerateSummary builds the manifest and saves it to path, as YAML when the
// path ends in .yaml or .yml and as JSON otherwise.
func GenerateSummary(info RunInfo, path string, s *storage.Storage) (*SummaryManifest, error) {
	if s == nil {
		s = &storage.Storage{}
	}
	m := Build(info, s)

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
	default:
		data, err = json.MarshalIndent(m, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return nil, fmt.Errorf("error saving manifest: %w", err)
	}
	return m, nil
}
