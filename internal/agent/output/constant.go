package output

// Quality gate thresholds.
const (
	MinContentLength = 20
	ShortInputLength = 10
)

// Fallback replies used when the model output cannot be shown as is.
const (
	FallbackNeedDetail = "I'm processing your request. Please provide more details about your recruiting needs."
	FallbackRefusal    = "As your recruiting assistant, I'm here to help with your recruiting needs. " +
		"Could you tell me more about the position you're recruiting for?"
	FallbackShortInput = "I'm Helix, your recruiting assistant. I can help you create personalized " +
		"outreach sequences for your candidates. What position are you recruiting for?"
	FallbackDetailed = "I'd like to help you with your recruiting needs. To create an effective outreach " +
		"sequence, I need some information about the role, key requirements, and what " +
		"makes your company attractive to candidates. Could you share more details?"
)

// refusalPatterns are matched case-insensitively as substrings.
var refusalPatterns = []string{
	"I apologize, but I cannot",
	"I'm sorry, I cannot",
	"I cannot assist with",
	"I'm not able to",
}
