package summarize

import (
	"fmt"

	"github.com/aissummarizer/core/internal/modules/document"
)

// BuildPrompt renders the instruction prompt for an extracted document. The
// subject line names the format, e.g. "Word Document".
func BuildPrompt(content document.Content, opts Options) string {
	return buildStyled(content.Format().Description(), content.AllText(), opts)
}

// BuildTextPrompt renders the prompt for raw text input.
func BuildTextPrompt(text string, opts Options) string {
	return buildStyled("text", text, opts)
}

func buildStyled(subject, body string, opts Options) string {
	switch opts.Style() {
	case StyleBrief:
		return fmt.Sprintf("Summarize this %s in 2-3 sentences.\n"+
			"Focus only on the most important information.\n"+
			"\n"+
			"Content:\n"+
			"%s\n", subject, body)

	case StyleKeyPoints:
		return fmt.Sprintf("Extract the key points from this %s.\n"+
			"Present them as a bulleted list.\n"+
			"\n"+
			"Content:\n"+
			"%s\n", subject, body)

	case StyleExecutive:
		return fmt.Sprintf("Create a professional executive summary of this %s.\n"+
			"The summary should be:\n"+
			"- Concise (2-3 paragraphs)\n"+
			"- Written in formal business language\n"+
			"- Focused on key decisions and recommendations\n"+
			"\n"+
			"Content:\n"+
			"%s\n", subject, body)

	case StyleSentiment:
		return fmt.Sprintf("Analyze the sentiment and tone of this %s.\n"+
			"Describe:\n"+
			"1. Overall sentiment (positive, negative, neutral)\n"+
			"2. Tone (formal, informal, technical, etc.)\n"+
			"3. Emotional elements\n"+
			"\n"+
			"Content:\n"+
			"%s\n", subject, body)

	case StyleTechnical:
		return fmt.Sprintf("Provide a technical summary of this %s.\n"+
			"Focus on:\n"+
			"1. Technical specifications\n"+
			"2. Implementation details\n"+
			"3. Key algorithms or processes\n"+
			"4. Technical requirements\n"+
			"\n"+
			"Content:\n"+
			"%s\n", subject, body)

	case StyleCustom:
		return fmt.Sprintf("%s\n"+
			"\n"+
			"Content:\n"+
			"%s\n", opts.CustomPrompt(), body)

	default: // StyleComprehensive
		return fmt.Sprintf("Please provide a comprehensive summary of this %s.\n"+
			"Include:\n"+
			"1. Main topic/theme\n"+
			"2. Key points covered\n"+
			"3. Visual elements analysis (if any)\n"+
			"4. Important takeaways\n"+
			"5. Overall structure\n"+
			"\n"+
			"Content:\n"+
			"%s\n", subject, body)
	}
}
