package completion

import (
	"time"

	"task-assistant/internal/model"
)

// ExtractInput is everything known about the turn before the model is asked.
type ExtractInput struct {
	Message        string
	MainController string
	Today          time.Time
	QuarterEnd     time.Time
	Pre            model.TaskParameters
	History        []model.Message
	Debug          bool
}

// ExtractOutput is the model's answer. When Parsed is false the model replied
// in prose (usually a clarifying question) and Content should be shown as is.
type ExtractOutput struct {
	Parsed  bool
	Params  model.TaskParameters
	Content string
}

// Config for the completion use case.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
}
