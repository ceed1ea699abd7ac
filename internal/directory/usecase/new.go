package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"task-assistant/internal/directory"
	"task-assistant/internal/directory/repository"
	"task-assistant/pkg/log"
	"task-assistant/pkg/retry"
)

// DefaultCacheTTL is how long user lists are served from memory.
const DefaultCacheTTL = 300 * time.Second

const (
	keyAllUsers        = "users:all"
	keyConfiguredUsers = "users:configured"
)

type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	policy retry.Policy

	cache *expirable.LRU[string, []string]
	group singleflight.Group
}

var _ directory.UseCase = (*implUseCase)(nil)

// New creates the directory use case.
func New(l log.Logger, repo repository.Repository, cfg directory.Config) *implUseCase {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Retry.Attempts == 0 {
		cfg.Retry = retry.DatabasePolicy
	}
	return &implUseCase{
		repo:   repo,
		l:      l,
		policy: cfg.Retry,
		cache:  expirable.NewLRU[string, []string](8, nil, cfg.CacheTTL),
	}
}
