package user

import (
	"context"
	"errors"
	"fmt"

	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	Profile(ctx context.Context, userID uint) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, params, hashed)
	if err != nil {
		if err != ErrEmailExists {
			log.Error("failed to create user", zap.String("email", params.Email), zap.Error(err))
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", params.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		// Same answer for unknown email and bad password.
		return "", User{}, ErrInvalidCredentials
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to look up user by email", zap.Error(err))
		return "", User{}, err
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Email)
	if err != nil {
		return "", User{}, err
	}

	return token, u, nil
}

func (s *service) Profile(ctx context.Context, userID uint) (User, error) {
	return s.repo.GetByID(ctx, userID)
}
