package service

import (
	"context"
	"database/sql"
	"errors"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("user %d not found", userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *domain.User, fullName, email, phone, avatarURL, bio string) (*domain.User, error) {
	if fullName == "" {
		return nil, domain.NewValidation("full name is required")
	}
	actor.FullName = fullName
	actor.Email = email
	actor.Phone = phone
	actor.AvatarURL = avatarURL
	actor.Bio = bio
	if err := s.userRepo.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}
