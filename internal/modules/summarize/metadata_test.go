package summarize

import (
	"testing"
	"time"

	"github.com/aissummarizer/core/internal/modules/document"
)

func TestBuildMetadataText(t *testing.T) {
	content := &document.TextContent{Paragraphs: []string{"one two", "three"}}
	md := BuildMetadata(content, 250*time.Millisecond)

	if md.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", md.WordCount)
	}
	if md.ParagraphCount != 2 {
		t.Errorf("ParagraphCount = %d, want 2", md.ParagraphCount)
	}
	if md.SlideCount != 0 || md.TableCount != 0 || md.ImageCount != 0 {
		t.Errorf("text metadata should leave other counters zero: %+v", md)
	}
	if md.ProcessingTimeMs != 250 {
		t.Errorf("ProcessingTimeMs = %d, want 250", md.ProcessingTimeMs)
	}
}

func TestBuildMetadataWord(t *testing.T) {
	content := &document.WordContent{
		Paragraphs: []string{"alpha beta"},
		Tables:     []document.Table{{Number: 1}, {Number: 2}},
		Pictures:   []document.Image{{Format: "png"}},
	}
	md := BuildMetadata(content, time.Second)

	if md.ParagraphCount != 1 || md.TableCount != 2 || md.ImageCount != 1 {
		t.Fatalf("unexpected counters: %+v", md)
	}
	if md.SlideCount != 0 {
		t.Fatalf("SlideCount = %d, want 0", md.SlideCount)
	}
}

func TestBuildMetadataSlideshow(t *testing.T) {
	content := &document.SlideshowContent{Slides: []document.Slide{
		{Number: 1, Texts: []string{"one"}},
		{Number: 2, Texts: []string{"two three"}, Images: []document.Image{{Format: "png"}}},
	}}
	md := BuildMetadata(content, 0)

	if md.SlideCount != 2 {
		t.Errorf("SlideCount = %d, want 2", md.SlideCount)
	}
	if md.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", md.WordCount)
	}
	if md.ImageCount != 1 {
		t.Errorf("ImageCount = %d, want 1", md.ImageCount)
	}
	if md.ParagraphCount != 0 || md.TableCount != 0 {
		t.Errorf("slideshow metadata should leave paragraph/table counters zero: %+v", md)
	}
}

func TestBuildMetadataPDF(t *testing.T) {
	content := &document.PDFContent{
		Pages:      []string{"page one text"},
		TotalPages: 2,
		PageImages: []document.Image{{Format: "png"}, {Format: "png"}},
	}
	md := BuildMetadata(content, 0)

	if md.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", md.WordCount)
	}
	if md.ImageCount != 2 {
		t.Errorf("ImageCount = %d, want 2", md.ImageCount)
	}
	if md.SlideCount != 0 || md.ParagraphCount != 0 || md.TableCount != 0 {
		t.Errorf("pdf metadata should leave other counters zero: %+v", md)
	}
}

func TestTextMetadata(t *testing.T) {
	md := TextMetadata("  one   two\nthree  ", 10*time.Millisecond)
	if md.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", md.WordCount)
	}
	if md.ProcessingTimeMs != 10 {
		t.Errorf("ProcessingTimeMs = %d, want 10", md.ProcessingTimeMs)
	}
	if md.ImageCount != 0 || md.SlideCount != 0 || md.ParagraphCount != 0 || md.TableCount != 0 {
		t.Errorf("text metadata should leave counters zero: %+v", md)
	}
}
