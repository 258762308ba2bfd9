package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/repository"
	"space_academy_backend/internal/util"
	"strings"

	"github.com/google/uuid"
)

type UserService struct {
	UserRepo       *repository.UserRepository
	StorageService *StorageService
}

type UserProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Avatar   string `json:"avatar"`
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, StorageService: storage}
}

func (s *UserService) GetProfile(userID uint) (*UserProfile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

// UpdateUsername renames the cadet, enforcing username uniqueness.
func (s *UserService) UpdateUsername(userID uint, username string) (*UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username must not be empty")
	}

	if existing, err := s.UserRepo.FindByUsername(username); err == nil && existing.ID != userID {
		return nil, util.ErrUsernameTaken
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Username = username
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

// UploadAvatar stores the image through the configured storage provider and
// records its URL on the user row.
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*UserProfile, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return nil, util.ErrInvalidAvatar
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := "avatars/" + uuid.New().String() + ext
	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

func profileOf(user *model.User) *UserProfile {
	return &UserProfile{
		ID:       user.ID,
		Username: user.Username,
		XP:       user.XP,
		Level:    user.Level,
		Avatar:   user.Avatar,
	}
}
