// Package extraction converts resume source files (PDF, DOCX, or images)
// into plain text. Extraction is best-effort: failures are reported through a
// tagged Outcome instead of aborting the pipeline, so downstream stages can
// degrade to empty fields while observability keeps the distinction between
// "nothing found" and "extractor errored".
package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Status classifies the result of a text extraction attempt.
type Status string

// Extraction outcome statuses.
const (
	// StatusText means extraction succeeded and produced non-empty text.
	StatusText Status = "text"
	// StatusEmpty means extraction succeeded but the document had no text.
	StatusEmpty Status = "empty"
	// StatusError means the extractor itself failed.
	StatusError Status = "error"
)

// Outcome is the tagged result of a text extraction attempt.
type Outcome struct {
	Status Status
	Text   string
	Err    error
}

// TextOrEmpty returns the extracted text, or an empty string for empty and
// errored outcomes. This is the degraded view downstream heuristics consume.
func (o Outcome) TextOrEmpty() string {
	if o.Status == StatusText {
		return o.Text
	}
	return ""
}

// ExtractText extracts plain text from the file at path, dispatching on the
// file extension (case-insensitive). Unknown extensions fall back to OCR on
// the assumption the file is an image.
func ExtractText(path string) Outcome {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".doc":
		return extractDOCX(path)
	case ".txt":
		return extractPlainText(path)
	default:
		return extractImage(path)
	}
}

func extractPlainText(path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return errorOutcome(fmt.Errorf("failed to read text file: %w", err))
	}
	return outcomeFor(string(data))
}

// outcomeFor classifies extracted text into a text or empty outcome.
func outcomeFor(text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return Outcome{Status: StatusEmpty}
	}
	return Outcome{Status: StatusText, Text: text}
}

func errorOutcome(err error) Outcome {
	return Outcome{Status: StatusError, Err: err}
}
