package summarize

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Style() != StyleComprehensive {
		t.Fatalf("Style() = %s, want COMPREHENSIVE", opts.Style())
	}
	if opts.MaxTokens() != 2000 {
		t.Fatalf("MaxTokens() = %d, want 2000", opts.MaxTokens())
	}
	if opts.Temperature() != 0.7 {
		t.Fatalf("Temperature() = %g, want 0.7", opts.Temperature())
	}
	if err := opts.validate(); err != nil {
		t.Fatalf("default options should validate: %v", err)
	}
}

func TestNewOptionsPreservesExplicitValues(t *testing.T) {
	opts, err := NewOptions(StyleBrief, 2000, 0.0, "")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Temperature() != 0.0 {
		t.Fatalf("Temperature() = %g, want the requested 0.0", opts.Temperature())
	}

	// Zero is not "absent" at this layer; it fails the 100-token floor.
	if _, err := NewOptions(StyleBrief, 0, 0.7, ""); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("zero maxTokens: got %v, want ErrInvalidOptions", err)
	}
}

func TestNewOptionsBounds(t *testing.T) {
	tests := []struct {
		name        string
		maxTokens   int
		temperature float64
	}{
		{"tokens below minimum", 99, 0.7},
		{"tokens above maximum", 10001, 0.7},
		{"negative temperature", 2000, -0.01},
		{"temperature above maximum", 2000, 2.01},
	}
	for _, tt := range tests {
		_, err := NewOptions(StyleBrief, tt.maxTokens, tt.temperature, "")
		if !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%s: got %v, want ErrInvalidOptions", tt.name, err)
		}
	}

	if _, err := NewOptions(StyleBrief, 100, 2.0, ""); err != nil {
		t.Errorf("boundary values should be accepted: %v", err)
	}
	if _, err := NewOptions(StyleBrief, 10000, 0.0, ""); err != nil {
		t.Errorf("boundary values should be accepted: %v", err)
	}
}

func TestNewOptionsCustomPrompt(t *testing.T) {
	if _, err := NewOptions(StyleCustom, 2000, 0.7, ""); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("CUSTOM without prompt: got %v, want ErrInvalidOptions", err)
	}
	if _, err := NewOptions(StyleCustom, 2000, 0.7, "   "); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("CUSTOM with blank prompt: got %v, want ErrInvalidOptions", err)
	}
	if _, err := NewOptions(StyleCustom, 2000, 0.7, "Summarize as a haiku."); err != nil {
		t.Errorf("CUSTOM with prompt: %v", err)
	}
	// Optional field: present but unused outside CUSTOM.
	if _, err := NewOptions(StyleBrief, 2000, 0.7, "ignored here"); err != nil {
		t.Errorf("non-CUSTOM with prompt should be accepted: %v", err)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"comprehensive", StyleComprehensive},
		{"BRIEF", StyleBrief},
		{" key_points ", StyleKeyPoints},
		{"Executive", StyleExecutive},
		{"sentiment", StyleSentiment},
		{"TECHNICAL", StyleTechnical},
		{"custom", StyleCustom},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if err != nil {
			t.Fatalf("ParseStyle(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseStyle("haiku"); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("ParseStyle(haiku): got %v, want ErrInvalidOptions", err)
	}
}
