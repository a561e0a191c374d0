package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/PabloGalante/interview-coach/internal/adapters/emotion"
	httpadapter "github.com/PabloGalante/interview-coach/internal/adapters/http"
	"github.com/PabloGalante/interview-coach/internal/adapters/llm"
	"github.com/PabloGalante/interview-coach/internal/adapters/sentiment"
	"github.com/PabloGalante/interview-coach/internal/app/review"
	"github.com/PabloGalante/interview-coach/internal/config"
	"github.com/PabloGalante/interview-coach/internal/domain"
	"github.com/PabloGalante/interview-coach/internal/observability"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		observability.Logger().Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	observability.Init(cfg.LogLevel)
	log := observability.Logger()

	if !cfg.Authorized() {
		log.Warn("deployment not authorized; serving the warning screen only",
			"hint", "set AI_INTERVIEW_COACH_AUTHORIZED_DEPLOYMENT=TRUE")
	}

	// Feedback backend by config (useful for dev)
	var feedbackClient domain.FeedbackClient
	switch cfg.FeedbackBackend {
	case "mock":
		log.Info("using mock feedback backend")
		feedbackClient = llm.NewMockFeedbackClient()

	case "vertex":
		log.Info("using vertex feedback backend", "project", cfg.GCPProject, "model", cfg.GeminiModel)
		feedbackClient, err = llm.NewVertexClient(ctx, llm.VertexConfig{
			ProjectID:       cfg.GCPProject,
			Location:        cfg.GCPLocation,
			Model:           cfg.GeminiModel,
			MaxOutputTokens: cfg.MaxOutputTokens,
			Temperature:     cfg.Temperature,
		})
		if err != nil {
			log.Error("initializing vertex client", "error", err)
			os.Exit(1)
		}

	default:
		if cfg.GeminiAPIKey == "" {
			// Tolerated: hosting environments typically inject the key.
			log.Warn("GEMINI_API_KEY is not set; feedback requests will be rejected by the API")
		}
		log.Info("using rest feedback backend", "model", cfg.GeminiModel)
		feedbackClient = llm.NewGeminiClient(llm.GeminiConfig{
			BaseURL:         cfg.GeminiBaseURL,
			Model:           cfg.GeminiModel,
			APIKey:          cfg.GeminiAPIKey,
			MaxOutputTokens: cfg.MaxOutputTokens,
			Temperature:     cfg.Temperature,
			MaxAttempts:     cfg.MaxAttempts,
			RetryBackoff:    cfg.RetryBackoff,
		})
	}

	scorer := sentiment.NewScorer()

	classifier, err := emotion.NewClassifier(cfg.FaceCascadeFile, cfg.EmotionModelFile)
	if err != nil {
		log.Warn("emotion classifier disabled", "error", err)
		classifier = emotion.NewDisabled("model assets not deployed")
	}

	svc := review.NewService(feedbackClient, scorer, classifier)
	handler := httpadapter.NewServer(svc, cfg.Authorized())

	addr := ":" + cfg.Port
	log.Info("interview coach listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
