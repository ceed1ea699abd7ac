package completion

// ConditionalLogicMessage is the reply for messages that describe if/then behavior.
const ConditionalLogicMessage = `I cannot create tasks with conditional logic like "if/then" statements. ` +
	`Please create the task without conditions, or set up the conditions separately in the QProcess system.`

// Messages carried by AIServiceError.
const (
	MsgTimeout       = "Request timeout - please try again"
	MsgRateLimited   = "LLM error: rate limit exceeded"
	MsgRequestFailed = "Failed to communicate with AI service"
	MsgInvalidFormat = "Invalid LLM response format"
)
