package service

import (
	"context"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

// UploadAvatar stores the image under a per-user name and records the
// resulting URL on the user.
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, originalName string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("avatars/%d_%d%s", userID, time.Now().Unix(), ext)

	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateAvatar(userID, url); err != nil {
		return "", err
	}
	return url, nil
}
