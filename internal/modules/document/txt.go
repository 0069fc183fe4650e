package document

import (
	"bufio"
	"bytes"
	"strings"
)

type txtExtractor struct{}

func (txtExtractor) Format() Format { return FormatText }

// Extract splits plain text on blank-line boundaries into paragraphs.
// Wrapped lines inside a paragraph are joined with a single space and empty
// paragraphs are discarded.
func (txtExtractor) Extract(data []byte) (Content, error) {
	var paragraphs []string
	var current strings.Builder

	flush := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ExtractionError{Format: FormatText, Err: err}
	}
	flush()

	return &TextContent{Paragraphs: paragraphs}, nil
}
