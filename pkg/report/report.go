// Package report serializes a run's results and formats top-keyword lists.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Marshal encodes r as indented JSON or as YAML.
func Marshal(r *models.Report, format string) ([]byte, error) {
	switch format {
	case "", "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Write marshals r and saves it to path. It returns the number of bytes written.
func Write(r *models.Report, path, format string, s *storage.Storage) (int64, error) {
	data, err := Marshal(r, format)
	if err != nil {
		return 0, err
	}
	if s == nil {
		s = &storage.Storage{}
	}
	if err := s.SaveFile(path, data); err != nil {
		return 0, fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return int64(len(data)), nil
}
