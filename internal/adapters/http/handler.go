package httpadapter

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/PabloGalante/interview-coach/internal/app/review"
	"github.com/PabloGalante/interview-coach/internal/domain"
)

type Server struct {
	svc      *review.Service
	validate *validator.Validate
}

// NewServer wires the review service behind the JSON API and the embedded
// page. When authorized is false the deployment gate intercepts every
// route except /healthz.
func NewServer(svc *review.Service, authorized bool) http.Handler {
	s := &Server{
		svc:      svc,
		validate: validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/categories", s.handleCategories)
	mux.HandleFunc("/review", s.handleReview)
	mux.HandleFunc("/", s.handleIndex)

	return chainMiddlewares(mux,
		withDeploymentGate(authorized),
		withCORS,
		withLogging,
		withRequestID,
	)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type reviewRequest struct {
	Category string `json:"category" validate:"required"`
	Answer   string `json:"answer"`

	// Base64-encoded snapshot, with or without a data-URL prefix.
	SnapshotBase64 string `json:"snapshot_base64,omitempty"`
}

type reviewResponse struct {
	Feedback  feedbackResponse  `json:"feedback"`
	Sentiment sentimentResponse `json:"sentiment"`
	Emotion   *emotionResponse  `json:"emotion,omitempty"`
}

type feedbackResponse struct {
	OK       bool           `json:"ok"`
	Markdown string         `json:"markdown,omitempty"`
	Error    *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type sentimentResponse struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type emotionResponse struct {
	Detected bool               `json:"detected"`
	Dominant string             `json:"dominant_emotion,omitempty"`
	Scores   map[string]float64 `json:"scores,omitempty"`
	Reason   string             `json:"reason,omitempty"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	categories := lo.Map(domain.Categories(), func(c domain.Category, _ int) string {
		return string(c)
	})
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if err := s.validate.Struct(req); err != nil {
		badRequest(w, "category is required")
		return
	}

	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		badRequest(w, "unknown category")
		return
	}

	snapshot, err := decodeSnapshot(req.SnapshotBase64)
	if err != nil {
		badRequest(w, "snapshot_base64 is not valid base64")
		return
	}

	out := s.svc.Review(r.Context(), review.ReviewInput{
		Category: category,
		Answer:   req.Answer,
		Snapshot: snapshot,
	})

	// Degraded analyses are data, not transport errors: always 200 here.
	writeJSON(w, http.StatusOK, toReviewResponse(out))
}

// ─────────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────────

func toReviewResponse(out *review.ReviewOutput) reviewResponse {
	resp := reviewResponse{
		Feedback: feedbackResponse{
			OK:       out.Feedback.OK(),
			Markdown: out.Feedback.Markdown,
		},
		Sentiment: sentimentResponse{
			Polarity:     out.Sentiment.Polarity,
			Subjectivity: out.Sentiment.Subjectivity,
		},
	}

	if f := out.Feedback.Failure; f != nil {
		resp.Feedback.Error = &errorResponse{
			Kind:    string(f.Kind),
			Message: f.Message,
		}
	}

	if e := out.Emotion; e != nil {
		resp.Emotion = &emotionResponse{
			Detected: e.Detected,
			Dominant: e.Dominant,
			Scores:   e.Scores,
			Reason:   e.Reason,
		}
	}

	return resp
}

// decodeSnapshot accepts plain base64 or a browser data URL
// ("data:image/png;base64,...") and returns the raw image bytes.
func decodeSnapshot(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}

	if i := strings.Index(encoded, ","); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+1:]
	}

	return base64.StdEncoding.DecodeString(encoded)
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
