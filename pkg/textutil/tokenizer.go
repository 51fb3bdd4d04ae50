package textutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var (
	// ErrDataPathUnset means no tokenizer resource directory was configured.
	ErrDataPathUnset = errors.New("tokenizer data path not set (use --punkt-data or PUNKT_DATA, then run 'hashtags setup')")
	// ErrTrainingData means the punkt training file is missing or unreadable.
	ErrTrainingData = errors.New("tokenizer training data unavailable")
)

// sentenceTokenizer is satisfied by both the English and the generic punkt
// tokenizers.
type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Tokenizer segments text into sentences with a punkt model.
type Tokenizer struct {
	language string
	punkt    sentenceTokenizer
}

// TrainingFile returns the path of the punkt training file for language.
func TrainingFile(dataPath, language string) string {
	return filepath.Join(dataPath, language+".json")
}

// NewTokenizer loads <dataPath>/<language>.json and builds a punkt tokenizer.
// It fails fast when dataPath is empty so a misconfigured run never starts.
func NewTokenizer(dataPath, language string) (*Tokenizer, error) {
	if strings.TrimSpace(dataPath) == "" {
		return nil, ErrDataPathUnset
	}
	if language == "" {
		language = "english"
	}

	path := TrainingFile(dataPath, language)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTrainingData, path, err)
	}

	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTrainingData, path, err)
	}

	var punkt sentenceTokenizer
	if language == "english" {
		punkt, err = english.NewSentenceTokenizer(storage)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTrainingData, path, err)
		}
	} else {
		punkt = sentences.NewSentenceTokenizer(storage)
	}

	return &Tokenizer{language: language, punkt: punkt}, nil
}

// Language returns the punkt training language.
func (t *Tokenizer) Language() string {
	return t.language
}

// SplitIntoSentences returns the trimmed, non-empty sentences of text in order.
func (t *Tokenizer) SplitIntoSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	tokens := t.punkt.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		sentence := strings.TrimSpace(s.Text)
		if sentence == "" {
			continue
		}
		out = append(out, sentence)
	}
	return out
}
