package errors

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
	Data       map[string]interface{}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithData attaches extra payload rendered under "data".
func (e *HTTPError) WithData(data map[string]interface{}) *HTTPError {
	e.Data = data
	return e
}
