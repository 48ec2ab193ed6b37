package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/upload"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	UploadAvatar(ctx context.Context, userID, filename string, data []byte) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	uploader upload.Uploader
	log      *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	uploader upload.Uploader,
	log *zap.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		uploader: uploader,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateProfile merges the patch field by field; nil fields leave the stored
// value untouched.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UploadAvatar(ctx context.Context, userID, filename string, data []byte) (*response.UserResponse, error) {
	if s.uploader == nil {
		return nil, fmt.Errorf("avatar upload is not configured")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("validation failed: avatar file is empty")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.UploadAvatar(ctx, filename, data)
	if err != nil {
		s.log.Error("Failed to upload avatar", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user.AvatarURL = &url
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to save avatar URL", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Avatar updated", zap.String("user_id", userID), zap.String("url", url))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}
