package extractor

import (
	"time"

	"task-assistant/internal/model"
)

// Extractor pulls the obvious fields out of a chat message before the
// language model sees it.
type Extractor interface {
	Extract(message, mainController string, today time.Time) model.TaskParameters
}
