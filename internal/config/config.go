package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// authorizedValue is the exact literal the deployment gate checks for.
// This is a soft deterrent against unauthorized public deployments, not
// an access-control mechanism.
const authorizedValue = "TRUE"

type Config struct {
	AuthorizedDeployment string `envconfig:"AI_INTERVIEW_COACH_AUTHORIZED_DEPLOYMENT" default:"FALSE"`

	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Feedback backend: "rest" talks to the Generative Language REST API,
	// "vertex" goes through the genai SDK, "mock" is for local dev.
	FeedbackBackend string `envconfig:"FEEDBACK_BACKEND" default:"rest" validate:"oneof=rest vertex mock"`

	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	GeminiModel   string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GeminiBaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta" validate:"url"`

	MaxOutputTokens int           `envconfig:"GEMINI_MAX_OUTPUT_TOKENS" default:"800" validate:"gt=0"`
	Temperature     float64       `envconfig:"GEMINI_TEMPERATURE" default:"0.7" validate:"gte=0,lte=2"`
	MaxAttempts     int           `envconfig:"GEMINI_MAX_ATTEMPTS" default:"1" validate:"gte=1,lte=5"`
	RetryBackoff    time.Duration `envconfig:"GEMINI_RETRY_BACKOFF" default:"500ms"`

	// Only used by the vertex backend.
	GCPProject  string `envconfig:"COACH_GCP_PROJECT"`
	GCPLocation string `envconfig:"COACH_GCP_LOCATION" default:"us-central1"`

	// Pre-trained model assets for the emotion classifier. When either file
	// is missing the classifier runs disabled instead of failing startup.
	FaceCascadeFile  string `envconfig:"COACH_FACE_CASCADE_FILE" default:"assets/facefinder"`
	EmotionModelFile string `envconfig:"COACH_EMOTION_MODEL_FILE" default:"assets/fer.onnx"`
}

// Load reads all env vars, applies defaults and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.FeedbackBackend == "vertex" && cfg.GCPProject == "" {
		return nil, fmt.Errorf("COACH_GCP_PROJECT must be set for the vertex backend")
	}

	return &cfg, nil
}

// Authorized reports whether the deployment gate is open.
func (c *Config) Authorized() bool {
	return strings.ToUpper(c.AuthorizedDeployment) == authorizedValue
}
