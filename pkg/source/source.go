// Package source provides the documents a run counts words in.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/hashtags/pkg/parser"
	"github.com/dtnitsch/hashtags/pkg/storage"
)

// ErrDecode is returned when a document is not valid UTF-8.
var ErrDecode = errors.New("document is not valid UTF-8")

var (
	textExts = []string{".txt"}
	htmlExts = []string{".html", ".htm"}
)

// Document is a named unit of text. Text is read on demand.
type Document interface {
	Name() string
	Text() (string, error)
}

// FileDocument is a plain-text document on disk.
type FileDocument struct {
	path    string
	storage *storage.Storage
}

func NewFileDocument(path string, s *storage.Storage) *FileDocument {
	if s == nil {
		s = &storage.Storage{}
	}
	return &FileDocument{path: path, storage: s}
}

// Name is the file's base name.
func (d *FileDocument) Name() string {
	return filepath.Base(d.path)
}

func (d *FileDocument) Path() string {
	return d.path
}

func (d *FileDocument) Text() (string, error) {
	return readUTF8(d.storage, d.path)
}

// HTMLDocument is an HTML file whose readable text is extracted on demand.
type HTMLDocument struct {
	FileDocument
	parser *parser.Parser
}

func NewHTMLDocument(path string, s *storage.Storage, p *parser.Parser) *HTMLDocument {
	if p == nil {
		p = &parser.Parser{}
	}
	return &HTMLDocument{FileDocument: *NewFileDocument(path, s), parser: p}
}

func (d *HTMLDocument) Text() (string, error) {
	html, err := readUTF8(d.storage, d.path)
	if err != nil {
		return "", err
	}
	text, err := d.parser.ExtractText(d.path, html)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML %s: %w", d.Name(), err)
	}
	return text, nil
}

// StringDocument is an in-memory document.
type StringDocument struct {
	DocName string
	Content string
}

func (d StringDocument) Name() string          { return d.DocName }
func (d StringDocument) Text() (string, error) { return d.Content, nil }

// Options controls which files ListDir picks up.
type Options struct {
	IncludeHTML bool
}

// ListDir returns one Document per matching file directly inside dir, in
// lexical file-name order.
func ListDir(dir string, opts Options, s *storage.Storage) ([]Document, error) {
	if s == nil {
		s = &storage.Storage{}
	}

	exts := textExts
	if opts.IncludeHTML {
		exts = append(append([]string{}, textExts...), htmlExts...)
	}

	paths, err := s.ListFiles(dir, exts...)
	if err != nil {
		return nil, err
	}

	p := &parser.Parser{}
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		if isHTML(path) {
			docs = append(docs, NewHTMLDocument(path, s, p))
			continue
		}
		docs = append(docs, NewFileDocument(path, s))
	}
	return docs, nil
}

func isHTML(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range htmlExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func readUTF8(s *storage.Storage, path string) (string, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrDecode)
	}
	return string(data), nil
}
