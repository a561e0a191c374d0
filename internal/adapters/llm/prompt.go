package llm

import (
	"fmt"
	"strings"

	"github.com/PabloGalante/interview-coach/internal/domain"
)

const feedbackPromptTemplate = `You are an AI Interview Coach. Your goal is to provide constructive and detailed feedback
on interview answers. The user has provided an answer for a question in the '%s' category.

Please analyze the following aspects of the answer:
1.  **Content and Relevance:** Is the answer directly addressing the question? Is it comprehensive?
2.  **Structure and Clarity:** Is the answer well-organized, logical, and easy to understand?
3.  **Conciseness:** Is the answer to the point without unnecessary jargon or rambling?
4.  **Impact and Examples:** Does the answer provide specific examples or demonstrate impact where appropriate (e.g., STAR method for behavioral questions)?
5.  **Strengths:** What did the user do well?
6.  **Areas for Improvement:** What could the user improve? Be specific and actionable.
7.  **Overall Score/Rating:** Provide a simple rating (e.g., 1-5, or Poor, Fair, Good, Excellent).

Interview Category: %s
User's Answer: "%s"

Please provide your feedback in a clear, markdown-formatted response.`

// BuildFeedbackPrompt turns (category, answer) into the full instruction
// document for the feedback model. Pure and deterministic: the same inputs
// always produce the same document. The answer is embedded verbatim —
// multi-line text and quotes reach the model exactly as typed.
func BuildFeedbackPrompt(category domain.Category, answer string) string {
	return fmt.Sprintf(feedbackPromptTemplate, category, category, answer)
}

const blankAnswerMessage = "Please provide an answer to receive feedback."

// answerIsBlank reports whether the answer is empty after trimming.
// A blank answer is rejected before any network call is made.
func answerIsBlank(answer string) bool {
	return strings.TrimSpace(answer) == ""
}
