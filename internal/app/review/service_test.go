package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/interview-coach/internal/adapters/emotion"
	"github.com/PabloGalante/interview-coach/internal/adapters/llm"
	"github.com/PabloGalante/interview-coach/internal/adapters/sentiment"
	"github.com/PabloGalante/interview-coach/internal/app/review"
	"github.com/PabloGalante/interview-coach/internal/domain"
)

// failingFeedbackClient simulates a feedback backend that is down.
type failingFeedbackClient struct{}

func (failingFeedbackClient) GenerateFeedback(context.Context, domain.Category, string) domain.FeedbackResult {
	return domain.FeedbackFailed(domain.FailureNetwork, "connection refused")
}

func newTestService() *review.Service {
	return review.NewService(
		llm.NewMockFeedbackClient(),
		sentiment.NewScorer(),
		emotion.NewDisabled("model assets not deployed"),
	)
}

func TestReviewEndToEnd(t *testing.T) {
	svc := newTestService()

	out := svc.Review(context.Background(), review.ReviewInput{
		Category: domain.CategoryTechnical,
		Answer:   "I optimized a query from O(n^2) to O(n log n).",
	})

	require.True(t, out.Feedback.OK())
	assert.Contains(t, out.Feedback.Markdown, "#", "feedback should carry markdown structure")

	assert.GreaterOrEqual(t, out.Sentiment.Polarity, -1.0)
	assert.LessOrEqual(t, out.Sentiment.Polarity, 1.0)
	assert.GreaterOrEqual(t, out.Sentiment.Subjectivity, 0.0)
	assert.LessOrEqual(t, out.Sentiment.Subjectivity, 1.0)

	assert.Nil(t, out.Emotion, "no snapshot means no emotion analysis")
}

func TestReviewBlankAnswer(t *testing.T) {
	svc := newTestService()

	out := svc.Review(context.Background(), review.ReviewInput{
		Category: domain.CategoryHR,
		Answer:   "   \n ",
	})

	require.False(t, out.Feedback.OK())
	assert.Equal(t, domain.FailureInvalidInput, out.Feedback.Failure.Kind)
	assert.Equal(t, "Please provide an answer to receive feedback.", out.Feedback.Failure.Message)

	// Blank input has a defined sentiment, not an error.
	assert.Equal(t, domain.SentimentResult{}, out.Sentiment)
}

func TestReviewAnalysesDegradeIndependently(t *testing.T) {
	svc := review.NewService(
		failingFeedbackClient{},
		sentiment.NewScorer(),
		emotion.NewDisabled("model assets not deployed"),
	)

	out := svc.Review(context.Background(), review.ReviewInput{
		Category: domain.CategoryBehavioral,
		Answer:   "I led the team through a great and successful launch.",
		Snapshot: []byte("not an image"),
	})

	// Feedback failed...
	require.False(t, out.Feedback.OK())
	assert.Equal(t, domain.FailureNetwork, out.Feedback.Failure.Kind)

	// ...but sentiment still produced real numbers...
	assert.Greater(t, out.Sentiment.Polarity, 0.0)

	// ...and the bad snapshot degraded only the emotion analysis.
	require.NotNil(t, out.Emotion)
	assert.False(t, out.Emotion.Detected)
	assert.Equal(t, "could not decode image", out.Emotion.Reason)
}

func TestReviewInvokesFeedbackBackendOncePerSubmission(t *testing.T) {
	mock := llm.NewMockFeedbackClient()
	svc := review.NewService(mock, sentiment.NewScorer(), emotion.NewDisabled("model assets not deployed"))

	svc.Review(context.Background(), review.ReviewInput{
		Category: domain.CategoryProduct,
		Answer:   "I shipped the beta two weeks early.",
	})
	assert.Equal(t, 1, mock.Calls)

	// Blank answers still go through the client, which rejects them
	// itself before any network work.
	svc.Review(context.Background(), review.ReviewInput{
		Category: domain.CategoryProduct,
		Answer:   "  ",
	})
	assert.Equal(t, 2, mock.Calls)
}

func TestReviewWithSnapshotRunsClassifier(t *testing.T) {
	svc := newTestService()

	out := svc.Review(context.Background(), review.ReviewInput{
		Category: domain.CategoryDataScience,
		Answer:   "I built a churn model.",
		Snapshot: []byte{0x00},
	})

	require.NotNil(t, out.Emotion)
	assert.False(t, out.Emotion.Detected)
}
