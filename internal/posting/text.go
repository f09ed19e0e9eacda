// Package posting loads job posting text for the bias scanner from plain
// text or HTML files, normalizing it into a clean linear character stream.
package posting

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	multiBlankRe = regexp.MustCompile(`\n\n\n+`)
)

// LoadText reads a job posting from a text or HTML file and returns its
// cleaned plain text.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read posting file %s: %w", path, err)
	}

	content := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		content, err = HTMLToText(content)
		if err != nil {
			return "", err
		}
	}

	return CleanText(content), nil
}

// HTMLToText strips markup from an HTML posting, dropping script and style
// content.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse posting HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Block elements become line breaks so term scanning does not glue
	// adjacent fragments together.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text(), nil
}

// CleanText normalizes posting text: line endings, per-line whitespace, and
// runs of blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
