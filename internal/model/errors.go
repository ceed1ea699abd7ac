package model

import (
	"fmt"
	"time"
)

// Error codes shared by the error taxonomy.
const (
	CodeTaskCreationFailed = "TASK_CREATION_FAILED"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeAIServiceError     = "AI_SERVICE_ERROR"

	CodeEmptyMessage      = "EMPTY_MESSAGE"
	CodeMessageTooLong    = "MESSAGE_TOO_LONG"
	CodeUnsafeContent     = "UNSAFE_CONTENT"
	CodeInvalidGroup      = "INVALID_GROUP"
	CodeMissingTaskName   = "MISSING_TASK_NAME"
	CodeMissingAssignees  = "MISSING_ASSIGNEES"
	CodeMissingRecurring  = "MISSING_RECURRING_FIELDS"
	CodeInvalidTaskName   = "INVALID_TASK_NAME"
	CodeInvalidAssignees  = "INVALID_ASSIGNEES"
	CodeInvalidDate       = "INVALID_DATE"
	CodePastDate          = "PAST_DATE"
	CodeInvalidTime       = "INVALID_TIME"
	CodeInvalidRecurring  = "INVALID_RECURRING"
	CodeInvalidPriority   = "INVALID_PRIORITY"
	CodeInvalidChecklist  = "INVALID_CHECKLIST"
	CodeConditionalLogic  = "CONDITIONAL_LOGIC"
	CodeTranslationFailed = "TRANSLATION_FAILED"

	CodeAITimeout        = "GROQ_API_TIMEOUT"
	CodeAIAPIError       = "GROQ_API_ERROR"
	CodeAIRequestError   = "GROQ_API_REQUEST_ERROR"
	CodeAIRateLimited    = "GROQ_API_RATE_LIMITED"
	CodeAIInvalidFormat  = "INVALID_RESPONSE_FORMAT"
	CodeMonthlyDayLimit  = "UC08_MONTHLY_DAY_LIMITATION"
	CodeNoInstanceID     = "NO_INSTANCE_ID"
	CodeBatchAllFailed   = "BATCH_ALL_FAILED"
	DetailTrackingID     = "tracking_id"
	DetailOriginalError  = "original_error"
	DetailFailedField    = "field"
	DetailTranslationDay = "day"
)

// ServiceError is the common shape of every error in the taxonomy.
type ServiceError struct {
	Message   string
	Code      string
	Details   map[string]any
	Timestamp time.Time
	Err       error
}

func newServiceError(message, code string, err error) ServiceError {
	return ServiceError{
		Message:   message,
		Code:      code,
		Details:   map[string]any{},
		Timestamp: time.Now(),
		Err:       err,
	}
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// setDetail lazily allocates Details.
func (e *ServiceError) setDetail(key string, value any) {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
}

// ValidationError is malformed or incomplete user input. Its message is
// always safe to show to the user.
type ValidationError struct {
	ServiceError
}

// NewValidationError returns a ValidationError with the given user-facing message.
func NewValidationError(message, code string) *ValidationError {
	if code == "" {
		code = CodeValidationFailed
	}
	return &ValidationError{ServiceError: newServiceError(message, code, nil)}
}

// WithDetail attaches a detail entry.
func (e *ValidationError) WithDetail(key string, value any) *ValidationError {
	e.setDetail(key, value)
	return e
}

// DatabaseError is a persistence or network failure.
type DatabaseError struct {
	ServiceError
}

// NewDatabaseError wraps err.
func NewDatabaseError(message string, err error) *DatabaseError {
	return &DatabaseError{ServiceError: newServiceError(message, CodeDatabaseError, err)}
}

// AIServiceError is a completion API failure.
type AIServiceError struct {
	ServiceError
}

// NewAIServiceError wraps err with a machine code.
func NewAIServiceError(message, code string, err error) *AIServiceError {
	if code == "" {
		code = CodeAIServiceError
	}
	return &AIServiceError{ServiceError: newServiceError(message, code, err)}
}

// TaskCreationError is a terminal failure of a chat turn. Message is already
// safe for the user; the tracking id ties it to the logged cause.
type TaskCreationError struct {
	ServiceError
}

// NewTaskCreationError wraps err.
func NewTaskCreationError(message, code string, err error) *TaskCreationError {
	if code == "" {
		code = CodeTaskCreationFailed
	}
	return &TaskCreationError{ServiceError: newServiceError(message, code, err)}
}

// WithTrackingID records the tracking id in the details.
func (e *TaskCreationError) WithTrackingID(id string) *TaskCreationError {
	e.setDetail(DetailTrackingID, id)
	return e
}

// WithDetail attaches a detail entry.
func (e *TaskCreationError) WithDetail(key string, value any) *TaskCreationError {
	e.setDetail(key, value)
	return e
}

// TrackingID returns the tracking id, if one was recorded.
func (e *TaskCreationError) TrackingID() string {
	id, _ := e.Details[DetailTrackingID].(string)
	return id
}

func (e *TaskCreationError) String() string {
	return fmt.Sprintf("%s [%s] %s", e.Code, e.TrackingID(), e.Message)
}
