package document

import (
	"fmt"
	"sort"
	"strings"
)

// Extractor turns the raw bytes of one document format into its Content
// variant.
type Extractor interface {
	Extract(data []byte) (Content, error)
	Format() Format
}

// extractors is the static extractor table. It is written out explicitly so
// startup order cannot change which formats are supported, and it is never
// mutated after initialization, making it safe for concurrent readers.
var extractors = map[Format]Extractor{
	FormatText:      txtExtractor{},
	FormatPDF:       pdfExtractor{},
	FormatWord:      docxExtractor{},
	FormatSlideshow: pptxExtractor{},
}

// FormatFromExtension maps a file extension (with or without leading dot,
// case-insensitive) to its format tag.
func FormatFromExtension(ext string) (Format, bool) {
	cleaned := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	for format := range extractors {
		if format.Extension() == cleaned {
			return format, true
		}
	}
	return "", false
}

// Resolve returns the extractor for a filename. The extension is the
// substring after the last dot; a blank filename or a missing/empty extension
// is an ErrInvalidInput, an unknown extension an UnsupportedFormatError.
func Resolve(filename string) (Extractor, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return nil, fmt.Errorf("%w: filename %q has no extension", ErrInvalidInput, name)
	}
	ext := strings.ToLower(name[idx+1:])

	format, ok := FormatFromExtension(ext)
	if !ok {
		return nil, &UnsupportedFormatError{Ext: ext}
	}
	return extractors[format], nil
}

// SupportedExtensions returns the sorted set of supported file extensions.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extractors))
	for format := range extractors {
		exts = append(exts, format.Extension())
	}
	sort.Strings(exts)
	return exts
}
