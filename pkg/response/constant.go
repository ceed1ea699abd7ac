package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong while processing your request. Please try again or contact support if the issue persists."
	RateLimitedMessage      = "I'm receiving too many requests right now. Please wait a moment and try again."
	InternalServerErrorCode = 500
	RateLimitedErrorCode    = 429
)

// Resp is the envelope of every API response.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
