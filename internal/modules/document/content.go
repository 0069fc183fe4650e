package document

import (
	"strconv"
	"strings"
)

// Format identifies which document format a content instance originated from.
// The set is closed; adding a format requires updating every switch over it.
type Format string

const (
	FormatText      Format = "TXT"
	FormatPDF       Format = "PDF"
	FormatWord      Format = "DOCX"
	FormatSlideshow Format = "PPTX"
)

// Extension returns the file extension (without dot) for the format.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "docx"
	case FormatSlideshow:
		return "pptx"
	}
	return ""
}

// Description returns the human-readable format name used in prompts.
func (f Format) Description() string {
	switch f {
	case FormatText:
		return "Text Document"
	case FormatPDF:
		return "PDF Document"
	case FormatWord:
		return "Word Document"
	case FormatSlideshow:
		return "PowerPoint Presentation"
	}
	return ""
}

// Content is the normalized, format-independent representation of an
// extracted document. It is a sealed interface: the four variants below are
// the only implementations.
type Content interface {
	// AllText returns the full concatenated text of the document.
	AllText() string
	// WordCount returns the approximate number of whitespace-delimited words.
	WordCount() int
	// Format returns the format tag of the source document.
	Format() Format
	// HasImages reports whether any images were extracted.
	HasImages() bool
	// Images returns the extracted images in document order.
	Images() []Image

	isContent()
}

// Image is a single extracted raster image, immutable once extracted.
type Image struct {
	Base64    string `json:"base64_data"`
	Format    string `json:"format"` // png, jpeg, gif, webp, bmp
	SizeBytes int    `json:"size_bytes"`
}

// DataURL renders the image as an inline data URL for multimodal AI requests.
func (i Image) DataURL() string {
	return "data:image/" + i.Format + ";base64," + i.Base64
}

// Table is a single extracted table. Number is 1-based and stable within a
// document. The first row is treated as a header for rendering only.
type Table struct {
	Number int        `json:"number"`
	Rows   [][]string `json:"rows"`
}

// Text renders the table in a plain pipe format for prompt inclusion.
func (t Table) Text() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		sb.WriteString("  | ")
		for _, cell := range row {
			sb.WriteString(cell)
			sb.WriteString(" | ")
		}
		sb.WriteByte('\n')
		if i == 0 && len(t.Rows) > 1 {
			sb.WriteString("  ")
			sb.WriteString(strings.Repeat("--------", len(row)))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// TextContent is a plain-text document split into paragraphs.
type TextContent struct {
	Paragraphs []string
}

func (c *TextContent) AllText() string {
	return strings.Join(c.Paragraphs, "\n\n")
}

func (c *TextContent) WordCount() int { return countWords(c.Paragraphs) }
func (c *TextContent) Format() Format { return FormatText }
func (c *TextContent) HasImages() bool { return false }
func (c *TextContent) Images() []Image { return nil }
func (c *TextContent) isContent()      {}

// PDFContent holds per-page text plus one rasterized image per page.
type PDFContent struct {
	Pages      []string // non-empty pages only, in page order
	TotalPages int
	PageImages []Image
}

func (c *PDFContent) AllText() string {
	var sb strings.Builder
	for i, page := range c.Pages {
		sb.WriteString("=== PAGE ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(" ===\n")
		sb.WriteString(page)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (c *PDFContent) WordCount() int { return countWords(c.Pages) }
func (c *PDFContent) Format() Format { return FormatPDF }
func (c *PDFContent) HasImages() bool { return len(c.PageImages) > 0 }
func (c *PDFContent) Images() []Image { return c.PageImages }
func (c *PDFContent) isContent()      {}

// WordContent holds paragraphs, tables and embedded images of a Word document.
type WordContent struct {
	Paragraphs []string
	Tables     []Table
	Pictures   []Image
}

func (c *WordContent) AllText() string {
	var sb strings.Builder
	for _, p := range c.Paragraphs {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	if len(c.Tables) > 0 {
		sb.WriteString("\n=== TABLES ===\n")
		for _, t := range c.Tables {
			sb.WriteString(t.Text())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *WordContent) WordCount() int { return countWords(c.Paragraphs) }
func (c *WordContent) Format() Format { return FormatWord }
func (c *WordContent) HasImages() bool { return len(c.Pictures) > 0 }
func (c *WordContent) Images() []Image { return c.Pictures }
func (c *WordContent) isContent()      {}

// Slide is one slide of a presentation: ordered text items and images.
type Slide struct {
	Number int
	Texts  []string
	Images []Image
}

// SlideshowContent holds the ordered slides of a presentation.
type SlideshowContent struct {
	Slides []Slide
}

func (c *SlideshowContent) AllText() string {
	var sb strings.Builder
	for _, slide := range c.Slides {
		sb.WriteString("=== Slide ")
		sb.WriteString(strconv.Itoa(slide.Number))
		sb.WriteString(" ===\n")
		for _, text := range slide.Texts {
			sb.WriteString(text)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (c *SlideshowContent) WordCount() int {
	count := 0
	for _, slide := range c.Slides {
		count += countWords(slide.Texts)
	}
	return count
}

func (c *SlideshowContent) Format() Format { return FormatSlideshow }

func (c *SlideshowContent) HasImages() bool { return len(c.Images()) > 0 }

func (c *SlideshowContent) Images() []Image {
	var all []Image
	for _, slide := range c.Slides {
		all = append(all, slide.Images...)
	}
	return all
}

func (c *SlideshowContent) isContent() {}

func countWords(units []string) int {
	count := 0
	for _, u := range units {
		count += len(strings.Fields(u))
	}
	return count
}

