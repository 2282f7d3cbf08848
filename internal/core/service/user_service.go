package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/ports"
	coreuid "github.com/taplog/attendance-system/internal/core/uid"
)

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns a UserService over the given directory repository.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:          uuid.NewString(),
		Name:        input.Name,
		UID:         coreuid.Canonicalize(input.UID),
		Gender:      input.Gender,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("uid", created.UID).Str("name", created.Name).Msg("user registered")
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{
		Name:        input.Name,
		Gender:      input.Gender,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if input.UID != "" {
		update.UID = coreuid.Canonicalize(input.UID)
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("uid", deleted.UID).Msg("user deleted")
	return deleted, nil
}
