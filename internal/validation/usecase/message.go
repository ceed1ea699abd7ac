package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/model"
	"task-assistant/internal/validation"
)

var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe[^>]*>`),
	regexp.MustCompile(`(?i)eval\s*\(`),
}

func (uc *implUseCase) ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return model.NewValidationError(validation.MsgEmptyMessage, model.CodeEmptyMessage)
	}
	if n := utf8.RuneCountInString(message); n > validation.MaxMessageLength {
		return model.NewValidationError(fmt.Sprintf(
			"Your message is too long (%d characters). Please keep it under %d characters.",
			n, validation.MaxMessageLength,
		), model.CodeMessageTooLong)
	}
	return uc.ValidateContentSafety(message)
}

func (uc *implUseCase) ValidateContentSafety(content string) error {
	if content == "" {
		return nil
	}
	for _, re := range unsafePatterns {
		if re.MatchString(content) {
			return model.NewValidationError(validation.MsgUnsafeContent, model.CodeUnsafeContent)
		}
	}
	for _, word := range strings.Fields(content) {
		if n := utf8.RuneCountInString(word); n > validation.MaxWordLength {
			return model.NewValidationError(fmt.Sprintf(
				"Your message contains an unusually long word (%d characters). Please check your input and try again.", n,
			), model.CodeUnsafeContent)
		}
	}
	return nil
}
