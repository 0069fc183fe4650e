package summarize

import (
	"errors"
	"fmt"
	"strings"
)

// Style selects how a document gets summarized.
type Style string

const (
	StyleComprehensive Style = "COMPREHENSIVE"
	StyleBrief         Style = "BRIEF"
	StyleKeyPoints     Style = "KEY_POINTS"
	StyleExecutive     Style = "EXECUTIVE"
	StyleSentiment     Style = "SENTIMENT"
	StyleTechnical     Style = "TECHNICAL"
	StyleCustom        Style = "CUSTOM"
)

// ErrInvalidOptions is wrapped by every option validation failure.
var ErrInvalidOptions = errors.New("invalid summary options")

const (
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7

	minMaxTokens = 100
	maxMaxTokens = 10000

	minTemperature = 0.0
	maxTemperature = 2.0
)

// ParseStyle resolves a case-insensitive style name.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToUpper(strings.TrimSpace(s))) {
	case StyleComprehensive:
		return StyleComprehensive, nil
	case StyleBrief:
		return StyleBrief, nil
	case StyleKeyPoints:
		return StyleKeyPoints, nil
	case StyleExecutive:
		return StyleExecutive, nil
	case StyleSentiment:
		return StyleSentiment, nil
	case StyleTechnical:
		return StyleTechnical, nil
	case StyleCustom:
		return StyleCustom, nil
	}
	return "", fmt.Errorf("%w: unknown summary type %q", ErrInvalidOptions, s)
}

// Options carries validated summarization parameters. Construct it with
// NewOptions or DefaultOptions; the zero value is not valid.
type Options struct {
	style        Style
	maxTokens    int
	temperature  float64
	customPrompt string
}

// DefaultOptions is a comprehensive summary with 2000 max tokens at
// temperature 0.7.
func DefaultOptions() Options {
	return Options{
		style:       StyleComprehensive,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
}

// NewOptions validates and builds a full option set. Values are taken
// verbatim; substituting defaults for absent fields is the caller's job.
func NewOptions(style Style, maxTokens int, temperature float64, customPrompt string) (Options, error) {
	opts := Options{
		style:        style,
		maxTokens:    maxTokens,
		temperature:  temperature,
		customPrompt: customPrompt,
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) validate() error {
	switch o.style {
	case StyleComprehensive, StyleBrief, StyleKeyPoints, StyleExecutive,
		StyleSentiment, StyleTechnical, StyleCustom:
	default:
		return fmt.Errorf("%w: unknown summary type %q", ErrInvalidOptions, o.style)
	}

	if o.maxTokens < minMaxTokens || o.maxTokens > maxMaxTokens {
		return fmt.Errorf("%w: max tokens must be between %d and %d, got %d",
			ErrInvalidOptions, minMaxTokens, maxMaxTokens, o.maxTokens)
	}
	if o.temperature < minTemperature || o.temperature > maxTemperature {
		return fmt.Errorf("%w: temperature must be between %.1f and %.1f, got %g",
			ErrInvalidOptions, minTemperature, maxTemperature, o.temperature)
	}

	// customPrompt is optional and ignored by every style except CUSTOM.
	if o.style == StyleCustom && strings.TrimSpace(o.customPrompt) == "" {
		return fmt.Errorf("%w: custom prompt is required for CUSTOM summaries", ErrInvalidOptions)
	}
	return nil
}

func (o Options) Style() Style         { return o.style }
func (o Options) MaxTokens() int       { return o.maxTokens }
func (o Options) Temperature() float64 { return o.temperature }
func (o Options) CustomPrompt() string { return o.customPrompt }
