package usecase

import (
	"time"

	"task-assistant/internal/completion"
	"task-assistant/internal/directory"
	"task-assistant/internal/errtrack"
	"task-assistant/internal/extractor"
	"task-assistant/internal/session"
	"task-assistant/internal/task"
	"task-assistant/internal/task/repository"
	"task-assistant/internal/translation"
	"task-assistant/internal/validation"
	pkgLog "task-assistant/pkg/log"
	"task-assistant/pkg/retry"
)

// DefaultTimezone is used when neither the request nor the config names one.
const DefaultTimezone = "America/New_York"

type implUseCase struct {
	l          pkgLog.Logger
	completion completion.UseCase
	extractor  extractor.Extractor
	validator  validation.UseCase
	sessions   session.UseCase
	directory  directory.UseCase
	translator translation.UseCase
	repo       repository.Repository
	tracker    *errtrack.Tracker
	dbRetry    retry.Policy
	timezone   string
	now        func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	comp completion.UseCase,
	ext extractor.Extractor,
	validator validation.UseCase,
	sessions session.UseCase,
	dir directory.UseCase,
	translator translation.UseCase,
	repo repository.Repository,
	tracker *errtrack.Tracker,
	cfg task.Config,
) *implUseCase {
	if tracker == nil {
		tracker = errtrack.New(l)
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = DefaultTimezone
	}
	dbRetry := cfg.DatabaseRetry
	if dbRetry.Attempts == 0 {
		dbRetry = retry.DatabasePolicy
	}
	if dbRetry.Retryable == nil {
		dbRetry.Retryable = func(err error) bool {
			return repository.KindOf(err) == repository.KindConnection
		}
	}

	return &implUseCase{
		l:          l,
		completion: comp,
		extractor:  ext,
		validator:  validator,
		sessions:   sessions,
		directory:  dir,
		translator: translator,
		repo:       repo,
		tracker:    tracker,
		dbRetry:    dbRetry,
		timezone:   cfg.DefaultTimezone,
		now:        time.Now,
	}
}
