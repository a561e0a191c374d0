// Package review orchestrates the three analyses run on one submission:
// remote feedback generation, lexical sentiment scoring and, when a
// snapshot is supplied, facial emotion classification. The analyses are
// independent: none consumes another's output and each degrades on its
// own without failing the interaction.
package review

import (
	"context"

	"github.com/PabloGalante/interview-coach/internal/domain"
	"github.com/PabloGalante/interview-coach/internal/observability"
)

type Service struct {
	feedback  domain.FeedbackClient
	sentiment domain.SentimentScorer
	emotion   domain.EmotionClassifier
}

func NewService(
	feedback domain.FeedbackClient,
	sentiment domain.SentimentScorer,
	emotion domain.EmotionClassifier,
) *Service {
	return &Service{
		feedback:  feedback,
		sentiment: sentiment,
		emotion:   emotion,
	}
}

type ReviewInput struct {
	Category domain.Category
	Answer   string

	// Snapshot holds one encoded still image from the user's camera, or
	// nil when no picture was taken.
	Snapshot []byte
}

type ReviewOutput struct {
	Feedback  domain.FeedbackResult
	Sentiment domain.SentimentResult

	// Emotion is nil when no snapshot was supplied.
	Emotion *domain.EmotionResult
}

// Review processes one submission. Everything is synchronous and
// stateless: the output is built from this call alone and nothing
// survives it. There is no error return because every failure mode is
// data in the output.
func (s *Service) Review(ctx context.Context, in ReviewInput) *ReviewOutput {
	log := observability.LoggerFromContext(ctx).With(
		"category", in.Category,
		"answer_chars", len(in.Answer),
		"has_snapshot", in.Snapshot != nil,
	)
	log.Info("reviewing submission")

	out := &ReviewOutput{
		Feedback:  s.feedback.GenerateFeedback(ctx, in.Category, in.Answer),
		Sentiment: s.sentiment.Score(in.Answer),
	}

	if in.Snapshot != nil {
		res := s.emotion.Classify(in.Snapshot)
		out.Emotion = &res
	}

	if out.Feedback.OK() {
		log.Info("review completed",
			"polarity", out.Sentiment.Polarity,
			"subjectivity", out.Sentiment.Subjectivity,
		)
	} else {
		log.Warn("feedback degraded",
			"kind", out.Feedback.Failure.Kind,
			"message", out.Feedback.Failure.Message,
		)
	}

	return out
}
