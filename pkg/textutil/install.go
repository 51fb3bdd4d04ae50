package textutil

import (
	"fmt"
	"os"

	"github.com/neurosnap/sentences/data"
)

// InstallTrainingData writes the punkt training file bundled with the
// sentences module into dataPath and returns the written path.
func InstallTrainingData(dataPath, language string) (string, error) {
	if dataPath == "" {
		return "", ErrDataPathUnset
	}
	if language == "" {
		language = "english"
	}

	b, err := data.Asset("data/" + language + ".json")
	if err != nil {
		return "", fmt.Errorf("no bundled training data for %q: %w", language, err)
	}

	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	path := TrainingFile(dataPath, language)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return "", fmt.Errorf("failed to write training data: %w", err)
	}
	return path, nil
}
