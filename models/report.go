package models

// WordResult is the serialized form of one word's accumulator.
// Field names match the report format consumers already parse.
type WordResult struct {
	Word      string   `json:"Word" yaml:"Word"`
	Count     int      `json:"Count" yaml:"Count"`
	Documents []string `json:"Documents" yaml:"Documents"`
	Sentences []string `json:"Sentences containing the word" yaml:"Sentences containing the word"`
}

// Report is the final, read-only output of a run.
type Report struct {
	StopWords []string     `json:"stop_words" yaml:"stop_words"`
	Results   []WordResult `json:"results" yaml:"results"`
}

// DocumentStat summarizes what a single document contributed to a run.
type DocumentStat struct {
	Name      string `json:"name" yaml:"name"`
	Sentences int    `json:"sentences" yaml:"sentences"`
	Words     int    `json:"words" yaml:"words"` // occurrences kept after stop-word filtering
	SizeBytes int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Language  string `json:"language,omitempty" yaml:"language,omitempty"`
}
