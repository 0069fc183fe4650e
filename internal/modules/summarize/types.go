package summarize

// optionsRequest carries the optional tuning fields shared by both
// summarization endpoints. Pointers distinguish "absent" from zero.
type optionsRequest struct {
	SummaryType  string   `form:"summary_type"  json:"summary_type"`
	MaxTokens    *int     `form:"max_tokens"    json:"max_tokens"`
	Temperature  *float64 `form:"temperature"   json:"temperature"`
	CustomPrompt string   `form:"custom_prompt" json:"custom_prompt"`
}

// summarizeTextRequest is the body of POST /documents/summarize/text.
type summarizeTextRequest struct {
	Text string `json:"text" binding:"required"`
	optionsRequest
}

// supportedTypesResponse is the body of GET /documents/supported-types.
type supportedTypesResponse struct {
	Extensions []string `json:"extensions"`
}

// historyItem is one row of GET /summaries.
type historyItem struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	SummaryType  string    `json:"summary_type"`
	Summary      string    `json:"summary"`
	Metadata     *Metadata `json:"metadata,omitempty"`
	Created      string    `json:"created"`
}

// buildOptions resolves an options request against the defaults.
func (r optionsRequest) buildOptions() (Options, error) {
	style := StyleComprehensive
	if r.SummaryType != "" {
		parsed, err := ParseStyle(r.SummaryType)
		if err != nil {
			return Options{}, err
		}
		style = parsed
	}

	maxTokens := defaultMaxTokens
	if r.MaxTokens != nil {
		maxTokens = *r.MaxTokens
	}
	temperature := defaultTemperature
	if r.Temperature != nil {
		temperature = *r.Temperature
	}

	return NewOptions(style, maxTokens, temperature, r.CustomPrompt)
}
