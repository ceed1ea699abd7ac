package usecase

import (
	"task-assistant/internal/directory"
	"task-assistant/internal/validation"
	"task-assistant/pkg/log"
)

type implUseCase struct {
	l   log.Logger
	dir directory.UseCase
}

var _ validation.UseCase = (*implUseCase)(nil)

// New creates the validation use case. dir may be nil, in which case group
// checks are skipped.
func New(l log.Logger, dir directory.UseCase) *implUseCase {
	return &implUseCase{l: l, dir: dir}
}
