package document

import (
	"strings"
	"testing"
)

func TestParseContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n72 720 Td\n(Hello ) Tj\n[(wo) (rld)] TJ\nT*\n(second line) '\nET\n")
	got := parseContentStream(stream)
	want := "Hello world second line"
	if got != want {
		t.Fatalf("parseContentStream = %q, want %q", got, want)
	}
}

func TestParseContentStreamIgnoresNonTextOperators(t *testing.T) {
	stream := []byte("q\n1 0 0 1 50 50 cm\n/Im1 Do\nQ\n0 0 612 792 re\nf\n")
	if got := parseContentStream(stream); got != "" {
		t.Fatalf("graphics-only stream produced text: %q", got)
	}
}

func TestParseContentStreamRepositioningSeparatesWords(t *testing.T) {
	stream := []byte("(first) Tj\n10 0 Td\n(second) Tj\n")
	got := parseContentStream(stream)
	if got != "first second" {
		t.Fatalf("parseContentStream = %q, want %q", got, "first second")
	}
}

func TestDecodePDFLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain text`, "plain text"},
		{`a\(b\)c`, "a(b)c"},
		{`back\\slash`, `back\slash`},
		{`tab\there`, "tab\there"},
		{`line\nbreak`, "line\nbreak"},
		{`caf\351`, "caf\xe9"},
		{`\101\102\103`, "ABC"},
	}
	for _, tt := range tests {
		if got := decodePDFLiteral([]byte(tt.in)); got != tt.want {
			t.Errorf("decodePDFLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePDFText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"a\n\n\tb", "a b"},
		{"ctl\x00char", "ctlchar"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizePDFText(tt.in); got != tt.want {
			t.Errorf("normalizePDFText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPDFContentEmptyPagesStayCounted(t *testing.T) {
	// A three-page document whose middle page has no text: the text list
	// shrinks, the page total and the per-page images do not.
	c := &PDFContent{
		Pages:      []string{"alpha beta", "gamma"},
		TotalPages: 3,
		PageImages: []Image{{Format: "png"}, {Format: "png"}, {Format: "png"}},
	}
	if c.WordCount() != 3 {
		t.Fatalf("WordCount() = %d, want 3", c.WordCount())
	}
	if len(c.Images()) != 3 {
		t.Fatalf("Images() has %d entries, want one per page", len(c.Images()))
	}
	if !c.HasImages() {
		t.Fatal("HasImages() should be true")
	}

	text := c.AllText()
	if !strings.Contains(text, "=== PAGE 1 ===\nalpha beta") {
		t.Fatalf("AllText() = %q", text)
	}
	if !strings.Contains(text, "=== PAGE 2 ===\ngamma") {
		t.Fatalf("AllText() = %q", text)
	}
	if strings.Contains(text, "PAGE 3") {
		t.Fatalf("empty pages must not appear in the text: %q", text)
	}
}
