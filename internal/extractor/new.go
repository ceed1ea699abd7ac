package extractor

import (
	"task-assistant/pkg/schedule"
)

type implExtractor struct {
	parser schedule.Recognizer
}

var _ Extractor = (*implExtractor)(nil)

// New creates an extractor. When parser is nil a keyword fallback is used
// for recurrence.
func New(parser schedule.Recognizer) *implExtractor {
	return &implExtractor{parser: parser}
}
