package llm

import (
	"context"
	"fmt"

	"github.com/PabloGalante/interview-coach/internal/domain"
	"google.golang.org/genai"
)

// VertexClient is the SDK-backed alternative to the REST client, for
// deployments that already authenticate against a GCP project instead of
// carrying an API key.
type VertexClient struct {
	client    *genai.Client
	modelName string

	maxOutputTokens int32
	temperature     float32
}

type VertexConfig struct {
	ProjectID       string
	Location        string
	Model           string
	MaxOutputTokens int
	Temperature     float64
}

func NewVertexClient(ctx context.Context, cfg VertexConfig) (*VertexClient, error) {
	if cfg.ProjectID == "" || cfg.Location == "" {
		return nil, fmt.Errorf("project and location must be set for the vertex backend")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.ProjectID,
		Location: cfg.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{
		client:          client,
		modelName:       cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
		temperature:     float32(cfg.Temperature),
	}, nil
}

// GenerateFeedback implements domain.FeedbackClient using the genai SDK.
// SDK errors do not distinguish transport from decoding, so everything the
// SDK reports is surfaced as a network failure; an empty extraction is the
// schema failure.
func (v *VertexClient) GenerateFeedback(ctx context.Context, category domain.Category, answer string) domain.FeedbackResult {
	if answerIsBlank(answer) {
		return domain.FeedbackFailed(domain.FailureInvalidInput, blankAnswerMessage)
	}

	prompt := BuildFeedbackPrompt(category, answer)

	temp := v.temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: v.maxOutputTokens,
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return domain.FeedbackFailed(domain.FailureNetwork, fmt.Sprintf("vertex generate content: %v", err))
	}

	text := res.Text()
	if text == "" {
		return domain.FeedbackFailed(domain.FailureSchema, "vertex returned empty text")
	}

	return domain.FeedbackSuccess(text)
}
