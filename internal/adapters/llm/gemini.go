package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PabloGalante/interview-coach/internal/domain"
	"github.com/PabloGalante/interview-coach/internal/observability"
)

// GeminiClient implements domain.FeedbackClient against the Generative
// Language REST API. One submission is one POST to
// {base}/models/{model}:generateContent with the API key as a query
// credential; the first candidate's text is returned verbatim.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string

	maxOutputTokens int
	temperature     float64

	// maxAttempts > 1 enables a bounded retry for transport-level failures
	// only. The default of 1 keeps the single-shot contract.
	maxAttempts int
	backoff     time.Duration
}

type GeminiConfig struct {
	BaseURL         string
	Model           string
	APIKey          string
	MaxOutputTokens int
	Temperature     float64
	MaxAttempts     int
	RetryBackoff    time.Duration
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &GeminiClient{
		httpClient:      &http.Client{},
		baseURL:         cfg.BaseURL,
		model:           cfg.Model,
		apiKey:          cfg.APIKey,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     cfg.Temperature,
		maxAttempts:     cfg.MaxAttempts,
		backoff:         cfg.RetryBackoff,
	}
}

// ─────────────────────────────────────────────
// Wire format
// ─────────────────────────────────────────────

type generateContentRequest struct {
	Contents         []contentTurn    `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type contentTurn struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content *candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []part `json:"parts"`
}

// candidateText walks candidates[0].content.parts[0].text. Any missing
// segment yields false so the caller reports a single schema failure
// instead of a chain of presence checks.
func candidateText(resp generateContentResponse) (string, bool) {
	if len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	text := content.Parts[0].Text
	if text == "" {
		return "", false
	}
	return text, true
}

// ─────────────────────────────────────────────
// FeedbackClient
// ─────────────────────────────────────────────

// GenerateFeedback implements domain.FeedbackClient. A blank answer is
// rejected before any request is built; after that a single attempt (or a
// bounded retry on transport failures) produces either the candidate text
// or one typed failure.
func (c *GeminiClient) GenerateFeedback(ctx context.Context, category domain.Category, answer string) domain.FeedbackResult {
	if answerIsBlank(answer) {
		return domain.FeedbackFailed(domain.FailureInvalidInput, blankAnswerMessage)
	}

	log := observability.LoggerFromContext(ctx).With(
		"component", "gemini_client",
		"model", c.model,
		"category", category,
	)

	prompt := BuildFeedbackPrompt(category, answer)

	var result domain.FeedbackResult
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		result = c.doRequest(ctx, prompt)
		if result.OK() || result.Failure.Kind != domain.FailureNetwork {
			break
		}

		log.Warn("feedback request failed",
			"attempt", attempt,
			"kind", result.Failure.Kind,
			"error", result.Failure.Message,
		)

		if attempt < c.maxAttempts {
			select {
			case <-time.After(c.backoff * time.Duration(attempt)):
			case <-ctx.Done():
				return domain.FeedbackFailed(domain.FailureNetwork, ctx.Err().Error())
			}
		}
	}

	if result.OK() {
		log.Info("feedback generated", "chars", len(result.Markdown))
	}
	return result
}

func (c *GeminiClient) doRequest(ctx context.Context, prompt string) domain.FeedbackResult {
	payload := generateContentRequest{
		Contents: []contentTurn{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			MaxOutputTokens: c.maxOutputTokens,
			Temperature:     c.temperature,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		// Marshal of a plain struct cannot realistically fail; treated as
		// a parse-side failure to stay inside the taxonomy.
		return domain.FeedbackFailed(domain.FailureParse, fmt.Sprintf("encoding request: %v", err))
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.FeedbackFailed(domain.FailureNetwork, fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.FeedbackFailed(domain.FailureNetwork, fmt.Sprintf("calling feedback service: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FeedbackFailed(domain.FailureNetwork, fmt.Sprintf("reading response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.FeedbackFailed(domain.FailureNetwork,
			fmt.Sprintf("feedback service returned status %d: %s", resp.StatusCode, truncate(string(raw), 300)))
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return domain.FeedbackFailed(domain.FailureParse, fmt.Sprintf("decoding response: %v", err))
	}

	text, ok := candidateText(decoded)
	if !ok {
		return domain.FeedbackFailed(domain.FailureSchema,
			fmt.Sprintf("unexpected response structure: %s", truncate(string(raw), 300)))
	}

	return domain.FeedbackSuccess(text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
