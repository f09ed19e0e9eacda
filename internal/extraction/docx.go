package extraction

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphEndRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX extracts paragraph text from a DOCX document, joined with
// newlines in document order.
func extractDOCX(path string) Outcome {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return errorOutcome(fmt.Errorf("failed to open DOCX %s: %w", path, err))
	}
	defer func() { _ = r.Close() }()

	content := r.Editable().GetContent()

	return outcomeFor(docxContentToText(content))
}

// docxContentToText flattens the word/document.xml body into plain text,
// one line per paragraph.
func docxContentToText(content string) string {
	content = paragraphEndRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
