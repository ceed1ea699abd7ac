package http

import (
	"errors"
	"net/http"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	pkgErrors "task-assistant/pkg/errors"
	"task-assistant/pkg/response"
)

var (
	errNoMessage   = pkgErrors.NewHTTPError(http.StatusBadRequest, "No message provided.")
	errNoUser      = pkgErrors.NewHTTPError(http.StatusBadRequest, "No user provided.")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
)

// conversationalPhrases mark failures that read as a normal assistant reply.
var conversationalPhrases = []string{
	"Did you mean",
	"Please try",
	"Who should be assigned",
	"What would you like",
}

// isConversational reports whether msg should be shown as a reply rather than an error.
func isConversational(msg string) bool {
	for _, p := range conversationalPhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// mapError translates use-case errors into HTTP errors. ok is false when the
// error should be rendered as a plain reply with status 200.
func (h *handler) mapError(err error) (httpErr error, ok bool) {
	switch {
	case errors.Is(err, task.ErrEmptyMessage):
		return errNoMessage, true
	case errors.Is(err, task.ErrEmptyUsername):
		return errNoUser, true
	}

	var tcErr *model.TaskCreationError
	if !errors.As(err, &tcErr) {
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage), true
	}
	if isConversational(tcErr.Message) {
		return nil, false
	}

	var vErr *model.ValidationError
	if tcErr.Code == model.CodeValidationFailed || errors.As(err, &vErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, tcErr.Message).
			WithData(map[string]interface{}{"reply": tcErr.Message}), true
	}

	data := map[string]interface{}{}
	if id := tcErr.TrackingID(); id != "" {
		data[model.DetailTrackingID] = id
	}
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, tcErr.Message).WithData(data), true
}
