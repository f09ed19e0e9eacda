package extraction

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// extractImage runs OCR on the file, assuming it is an image. Any OCR
// failure is absorbed into an error outcome with empty text; OCR is the
// fallback of last resort and must never abort the pipeline.
func extractImage(path string) Outcome {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetImage(path); err != nil {
		return errorOutcome(fmt.Errorf("failed to load image %s: %w", path, err))
	}

	text, err := client.Text()
	if err != nil {
		return errorOutcome(fmt.Errorf("OCR failed for %s: %w", path, err))
	}

	return outcomeFor(text)
}
