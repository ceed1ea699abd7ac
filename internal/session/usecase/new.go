package usecase

import (
	"time"

	"task-assistant/internal/session"
	"task-assistant/internal/session/repository"
	"task-assistant/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

var _ session.UseCase = (*implUseCase)(nil)

// New creates the session use case.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{repo: repo, l: l, now: time.Now}
}
