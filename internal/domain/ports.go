package domain

import "context"

// FeedbackClient defines how the core application asks a text-generation
// service for interview feedback. Implementations never return a Go error:
// every failure mode is folded into the result so the caller can surface
// it to the user as-is.
type FeedbackClient interface {
	GenerateFeedback(ctx context.Context, category Category, answer string) FeedbackResult
}

// SentimentScorer produces the two lexical sentiment scalars for a text.
// Total over its input domain: there is no error path.
type SentimentScorer interface {
	Score(text string) SentimentResult
}

// EmotionClassifier analyzes a single encoded snapshot image. Failures of
// any kind (bad bytes, no face, model trouble) become a NotDetected result,
// never a panic or an error that could abort the interaction.
type EmotionClassifier interface {
	Classify(imageBytes []byte) EmotionResult
}
