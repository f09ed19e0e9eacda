package extraction

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts text from a PDF page by page, concatenated in page
// order.
func extractPDF(path string) Outcome {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return errorOutcome(fmt.Errorf("failed to open PDF %s: %w", path, err))
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not discard the rest.
			continue
		}
		sb.WriteString(text)
	}

	return outcomeFor(sb.String())
}
