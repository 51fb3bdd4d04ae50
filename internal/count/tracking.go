package count

import (
	"github.com/dtnitsch/hashtags/models"
	"github.com/dtnitsch/hashtags/pkg/detector"
	"github.com/dtnitsch/hashtags/pkg/source"
)

// trackedDocument records what was learned about a document while its text
// was read, so nothing has to read the document a second time.
type trackedDocument struct {
	source.Document
	detector *detector.LanguageDetector

	size     int64
	language string
}

func (d *trackedDocument) Text() (string, error) {
	text, err := d.Document.Text()
	if err != nil {
		return "", err
	}
	d.size = int64(len(text))
	if d.detector != nil {
		d.language, _ = d.detector.Detect(text)
	}
	return text, nil
}

type trackedSet []*trackedDocument

func track(docs []source.Document, lang *detector.LanguageDetector) trackedSet {
	set := make(trackedSet, len(docs))
	for i, d := range docs {
		set[i] = &trackedDocument{Document: d, detector: lang}
	}
	return set
}

func (set trackedSet) documents() []source.Document {
	docs := make([]source.Document, len(set))
	for i, d := range set {
		docs[i] = d
	}
	return docs
}

// annotate fills size and language into stats. Stats follow document order.
func (set trackedSet) annotate(stats []models.DocumentStat) []models.DocumentStat {
	for i := range stats {
		if i >= len(set) {
			break
		}
		stats[i].SizeBytes = set[i].size
		stats[i].Language = set[i].language
	}
	return stats
}
