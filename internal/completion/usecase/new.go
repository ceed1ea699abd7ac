package usecase

import (
	"task-assistant/internal/completion"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
)

// Defaults for requests to the completion API.
const (
	DefaultModel       = "llama3-70b-8192"
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 1024
)

type implUseCase struct {
	l   log.Logger
	llm llmprovider.Generator
	cfg completion.Config
}

var _ completion.UseCase = (*implUseCase)(nil)

// New creates a new completion use case.
func New(l log.Logger, llm llmprovider.Generator, cfg completion.Config) *implUseCase {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &implUseCase{l: l, llm: llm, cfg: cfg}
}
