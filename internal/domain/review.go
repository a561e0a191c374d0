package domain

// FeedbackResult is the outcome of one feedback request: either markdown
// text from the model or a single typed failure. It is built once by the
// feedback client and consumed once by the presentation layer.
type FeedbackResult struct {
	Markdown string
	Failure  *FeedbackFailure
}

// FeedbackFailure carries the terminal failure of a feedback request.
// The message is surfaced to the user verbatim.
type FeedbackFailure struct {
	Kind    FailureKind
	Message string
}

func FeedbackSuccess(markdown string) FeedbackResult {
	return FeedbackResult{Markdown: markdown}
}

func FeedbackFailed(kind FailureKind, message string) FeedbackResult {
	return FeedbackResult{Failure: &FeedbackFailure{Kind: kind, Message: message}}
}

// OK reports whether the result carries feedback text.
func (r FeedbackResult) OK() bool {
	return r.Failure == nil
}

// SentimentResult holds the two lexical sentiment scalars.
// Polarity is in [-1, 1], subjectivity in [0, 1]. The zero value is the
// defined result for blank input, not an error.
type SentimentResult struct {
	Polarity     float64
	Subjectivity float64
}

// EmotionResult is the outcome of analyzing one snapshot image. Either a
// dominant label with the full label→confidence distribution, or a reason
// why nothing was detected. Each snapshot is analyzed independently; no
// history is kept across invocations.
type EmotionResult struct {
	Detected bool
	Dominant string
	Scores   map[string]float64
	Reason   string
}

func EmotionDetected(dominant string, scores map[string]float64) EmotionResult {
	return EmotionResult{Detected: true, Dominant: dominant, Scores: scores}
}

func EmotionNotDetected(reason string) EmotionResult {
	return EmotionResult{Reason: reason}
}
