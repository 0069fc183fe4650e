package summarize

import (
	"context"
	"errors"
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strings"
	"syscall"
	"time"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"

	"github.com/aissummarizer/core/internal/config"
	"github.com/aissummarizer/core/internal/modules/document"
)

// Client sends one summarization request to an AI provider and returns the
// model's text output.
type Client interface {
	Complete(ctx context.Context, prompt string, images []document.Image, opts Options) (string, error)
}

// InvocationError wraps a provider call failure. Transient is true for
// timeouts and network-level failures that a retry could plausibly fix.
type InvocationError struct {
	Transient bool
	Err       error
}

func (e *InvocationError) Error() string {
	if e.Transient {
		return fmt.Sprintf("AI service unavailable: %v", e.Err)
	}
	return fmt.Sprintf("AI invocation failed: %v", e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// NewClient builds the provider client selected by configuration.
func NewClient(cfg config.AIConfig) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("AI provider api key is empty")
	}

	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	switch normalizeProviderType(cfg.Provider) {
	case "anthropic":
		opts := []anthropicoption.RequestOption{
			anthropicoption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
			anthropicoption.WithMaxRetries(0),
			anthropicoption.WithRequestTimeout(timeout),
		}
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
		}
		model := strings.TrimSpace(cfg.Model)
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		client := anthropicclient.NewClient(opts...)
		return &AnthropicClient{client: &client, model: model}, nil

	case "openai", "":
		opts := []openaioption.RequestOption{
			openaioption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
			openaioption.WithMaxRetries(0),
			openaioption.WithRequestTimeout(timeout),
		}
		if normalized := normalizeOpenAIBaseURL(cfg.Endpoint); normalized != "" {
			opts = append(opts, openaioption.WithBaseURL(normalized))
		}
		model := strings.TrimSpace(cfg.Model)
		if model == "" {
			model = "gpt-4o-mini"
		}
		client := openaiclient.NewClient(opts...)
		return &OpenAIClient{client: &client, model: model}, nil
	}

	return nil, fmt.Errorf("unknown AI provider type %q", cfg.Provider)
}

// OpenAIClient calls the chat completions API.
type OpenAIClient struct {
	client *openaiclient.Client
	model  string
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string, images []document.Image, opts Options) (string, error) {
	parts := []openaiclient.ChatCompletionContentPartUnionParam{
		openaiclient.TextContentPart(prompt),
	}
	for _, img := range images {
		parts = append(parts, openaiclient.ImageContentPart(
			openaiclient.ChatCompletionContentPartImageImageURLParam{URL: img.DataURL()},
		))
	}

	resp, err := c.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model:               openaiclient.ChatModel(c.model),
		Messages:            []openaiclient.ChatCompletionMessageParamUnion{openaiclient.UserMessage(parts)},
		MaxCompletionTokens: openaiclient.Int(int64(opts.MaxTokens())),
		Temperature:         openaiclient.Float(opts.Temperature()),
	})
	if err != nil {
		return "", &InvocationError{Transient: isTransient(err), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// AnthropicClient calls the messages API.
type AnthropicClient struct {
	client *anthropicclient.Client
	model  string
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string, images []document.Image, opts Options) (string, error) {
	blocks := []anthropicclient.ContentBlockParamUnion{
		anthropicclient.NewTextBlock(prompt),
	}
	for _, img := range images {
		blocks = append(blocks, anthropicclient.NewImageBlockBase64("image/"+img.Format, img.Base64))
	}

	resp, err := c.client.Messages.New(ctx, anthropicclient.MessageNewParams{
		Model:       anthropicclient.Model(c.model),
		MaxTokens:   int64(opts.MaxTokens()),
		Temperature: anthropicclient.Float(opts.Temperature()),
		Messages: []anthropicclient.MessageParam{
			anthropicclient.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", &InvocationError{Transient: isTransient(err), Err: err}
	}
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", nil
}

// isTransient walks the full cause chain looking for timeout or
// network-level failures.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) {
		if errors.Is(sysErr.Err, syscall.ECONNREFUSED) || errors.Is(sysErr.Err, syscall.ECONNRESET) {
			return true
		}
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var urlErr *neturl.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	return false
}

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

// normalizeOpenAIBaseURL makes sure a custom endpoint ends in /v1 the way
// the official client expects.
func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}
