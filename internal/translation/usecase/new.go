package usecase

import (
	"task-assistant/internal/translation"
	"task-assistant/internal/translation/repository"
	"task-assistant/pkg/log"
)

type implUseCase struct {
	translation.Translator
	repo repository.Repository
	l    log.Logger
}

var _ translation.UseCase = (*implUseCase)(nil)

// New creates the translation use case around tr. A nil tr gets fresh tables.
func New(l log.Logger, repo repository.Repository, tr translation.Translator) *implUseCase {
	if tr == nil {
		tr = NewTranslator()
	}
	return &implUseCase{Translator: tr, repo: repo, l: l}
}
