package usecase

import (
	"github.com/google/uuid"

	"weekly-checklist/internal/checklist/repository"
	"weekly-checklist/pkg/datemath"
	"weekly-checklist/pkg/log"
)

// implUseCase is the private implementation of checklist.UseCase.
type implUseCase struct {
	repo     repository.Repository
	cache    repository.Cache
	calendar *datemath.Calendar
	l        log.Logger
	newID    func() string
}

// New creates a new checklist UseCase implementation.
func New(repo repository.Repository, cache repository.Cache, calendar *datemath.Calendar, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		calendar: calendar,
		l:        l,
		newID:    uuid.NewString,
	}
}
