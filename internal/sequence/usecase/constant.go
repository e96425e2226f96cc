package usecase

const (
	DefaultUserID = "demo-user-123"

	// Placeholder values for a sequence first seen through Update.
	PlaceholderTitle    = "New Sequence"
	PlaceholderPosition = "Untitled Position"

	defaultCompanyName = "your company"

	generateMaxTokens = 2000
	refineMaxTokens   = 1000
	temperature       = 0.7

	minWords = 150
	maxWords = 250

	personalizationPlaceholder = "[CANDIDATE_NAME]"
)

const writerInstruction = `You are an expert recruiting copywriter. You write warm, specific outreach
emails that lead with the candidate's benefit, stay between 150 and 250 words,
use [CANDIDATE_NAME] for personalization and end with a clear call-to-action.
Return only what you are asked for, with no commentary and no markup tags.`

const generatePromptTemplate = `Create a recruiting outreach sequence for a %s position.

Company Context:
- Company Name: %s
%s
%s
Create a 3-step recruiting outreach sequence. For each step, provide:
1. A title for the step (e.g., "Initial Outreach", "Follow-up")
2. Email content with appropriate personalization

The sequence should follow these best practices:
- Personalized and specific to the role
- Value-focused (what's in it for the candidate)
- Concise and compelling (150-250 words)
- Includes a clear call-to-action
- Natural, conversational tone
- Avoids generic recruiting language

Format your response as a JSON array with this structure:
[
  {
    "title": "Step Title",
    "content": "Email content here"
  }
]`

const refinePromptTemplate = `Refine this recruiting message based on the feedback.

Current message:
%s

Feedback:
%s

Return only the improved message. Keep it between 150 and 250 words, keep any
[CANDIDATE_NAME] placeholders and keep a clear call-to-action.`

// callToActionMarkers are phrases that signal the reader is asked to do something.
var callToActionMarkers = []string{
	"schedule", "call", "chat", "reply", "let me know", "interested", "connect", "book", "?",
}
