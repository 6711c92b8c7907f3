package services

import (
	"context"

	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/types"
)

// ActivityRepository defines storage operations for the activity roster.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]types.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService encapsulates roster use-cases.
type ActivityService struct {
	repo ActivityRepository
}

func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) List(ctx context.Context) (map[string]types.Activity, error) {
	return s.repo.List(ctx)
}

func (s *ActivityService) Signup(ctx context.Context, name, email string) error {
	return s.repo.AddParticipant(ctx, name, email)
}

func (s *ActivityService) Unregister(ctx context.Context, name, email string) error {
	return s.repo.RemoveParticipant(ctx, name, email)
}
