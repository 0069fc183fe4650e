package summarize

import (
	"strings"
	"time"

	"github.com/aissummarizer/core/internal/modules/document"
)

// Metadata describes the summarized input. Count fields that do not apply to
// the source format stay zero.
type Metadata struct {
	WordCount        int   `json:"word_count"`
	ImageCount       int   `json:"image_count"`
	SlideCount       int   `json:"slide_count"`
	ParagraphCount   int   `json:"paragraph_count"`
	TableCount       int   `json:"table_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// BuildMetadata derives metadata from extracted content. The type switch is
// exhaustive over the content variants.
func BuildMetadata(content document.Content, elapsed time.Duration) Metadata {
	md := Metadata{
		WordCount:        clampCount(content.WordCount()),
		ImageCount:       clampCount(len(content.Images())),
		ProcessingTimeMs: elapsed.Milliseconds(),
	}

	switch c := content.(type) {
	case *document.TextContent:
		md.ParagraphCount = clampCount(len(c.Paragraphs))
	case *document.PDFContent:
		// Page counts live on the upload record; nothing extra here.
	case *document.WordContent:
		md.ParagraphCount = clampCount(len(c.Paragraphs))
		md.TableCount = clampCount(len(c.Tables))
	case *document.SlideshowContent:
		md.SlideCount = clampCount(len(c.Slides))
	}

	return md
}

// TextMetadata derives metadata for raw text input.
func TextMetadata(text string, elapsed time.Duration) Metadata {
	return Metadata{
		WordCount:        len(strings.Fields(text)),
		ProcessingTimeMs: elapsed.Milliseconds(),
	}
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
