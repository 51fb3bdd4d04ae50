package parser

import (
	"bufio"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockSelector lists the content-bearing tags kept as text blocks.
const blockSelector = "h1,h2,h3,h4,h5,h6,p,li,blockquote,td,pre"

type Parser struct{}

// ExtractText turns an HTML document into plain text, one content block per
// line. go-readability isolates the main article first; when it finds
// nothing the whole body is used.
func (p *Parser) ExtractText(path, html string) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}

	content := html
	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content = article.Content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	blocks := ExtractBlocks(doc)
	if len(blocks) == 0 {
		// No block tags at all; fall back to the raw body text.
		if text := normalizeText(doc.Find("body").Text()); text != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n"), nil
}

// ExtractBlocks returns the normalized text of each content block in document
// order. Nested matches (a <p> inside an <li>) are only emitted once, by the
// outermost block.
func ExtractBlocks(doc *goquery.Document) []string {
	var blocks []string
	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		text := normalizeText(s.Text())
		if text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
