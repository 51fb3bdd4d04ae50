// Package detector guesses the natural language of document text.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// punktLanguages are the languages a punkt training file exists for, keyed by
// lingua language. Values are training file base names.
var punktLanguages = map[lingua.Language]string{
	lingua.Czech:      "czech",
	lingua.Danish:     "danish",
	lingua.Dutch:      "dutch",
	lingua.English:    "english",
	lingua.Estonian:   "estonian",
	lingua.Finnish:    "finnish",
	lingua.French:     "french",
	lingua.German:     "german",
	lingua.Greek:      "greek",
	lingua.Italian:    "italian",
	lingua.Bokmal:     "norwegian",
	lingua.Polish:     "polish",
	lingua.Portuguese: "portuguese",
	lingua.Slovene:    "slovene",
	lingua.Spanish:    "spanish",
	lingua.Swedish:    "swedish",
	lingua.Turkish:    "turkish",
}

// LanguageDetector is limited to languages with punkt training data, so a
// detected language always names a usable tokenizer model.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

func NewLanguageDetector() *LanguageDetector {
	languages := make([]lingua.Language, 0, len(punktLanguages))
	for lang := range punktLanguages {
		languages = append(languages, lang)
	}
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the lowercase punkt language name for text, or false when
// the text is too short or ambiguous to call.
func (d *LanguageDetector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	name, known := punktLanguages[lang]
	return name, known
}
