package service

import (
	"elearn_backend/internal/config"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Signup registers a new account and returns the created user together with
// a freshly issued token. The email is stored lower-cased; uniqueness is
// case-insensitive, with the database unique index as the final arbiter.
func (s *AuthService) Signup(email, fullName, password string) (*model.User, string, error) {
	if !util.ValidateEmail(email) {
		return nil, "", fmt.Errorf("%w: invalid email format", util.ErrValidation)
	}
	if ok, msg := util.ValidatePasswordStrength(password); !ok {
		return nil, "", fmt.Errorf("%w: %s", util.ErrValidation, msg)
	}

	email = strings.ToLower(email)

	// Pre-check is an optimization; a concurrent signup still hits the
	// unique index below.
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		FullName: fullName,
		Email:    email,
		Password: hashedPassword,
		Points:   0,
	}
	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", util.ErrEmailRegistered
		}
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !util.CheckPassword(password, user.Password) {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
