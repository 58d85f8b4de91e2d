package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/minio"
	"Pulse/internal/pkg/security"
	"Pulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserService interface {
	SyncUser(ctx context.Context, req *dto.SyncUserDTO) (*dto.UserDTO, error)
	GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	CheckAuth(ctx context.Context, firebaseUID string) (*dto.AuthCheckDTO, error)
	UpdateAvatar(ctx context.Context, userID uint64, file *multipart.FileHeader) (string, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// SyncUser 按外部身份标识建档或更新，重复同步保持幂等
func (s *UserServiceImpl) SyncUser(ctx context.Context, req *dto.SyncUserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByFirebaseUID(ctx, req.FirebaseUID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		user := &model.User{
			Username:     req.Username,
			Email:        req.Email,
			FirebaseUID:  req.FirebaseUID,
			IsFirstLogin: true,
		}
		if req.AvatarURL != nil {
			user.AvatarURL = *req.AvatarURL
		}
		if req.Password != nil && *req.Password != "" {
			hashed, err := security.HashPassword(*req.Password)
			if err != nil {
				return nil, err
			}
			user.Password = &hashed
		}

		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		return toUserDTO(user), nil
	}

	updates := &model.User{ID: existing.ID}
	if req.Username != "" {
		updates.Username = req.Username
	}
	if req.Email != "" {
		updates.Email = req.Email
	}
	if req.AvatarURL != nil {
		updates.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.UpdateUser(ctx, updates); err != nil {
		return nil, err
	}

	refreshed, err := s.userRepo.GetUserById(ctx, existing.ID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(refreshed), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// CheckAuth 校验外部身份并签发内部 Token，同时记录登录时间
func (s *UserServiceImpl) CheckAuth(ctx context.Context, firebaseUID string) (*dto.AuthCheckDTO, error) {
	user, err := s.userRepo.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.AuthCheckDTO{Authenticated: false}, nil
	}

	token, err := security.GenerateToken(user.ID, user.FirebaseUID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateUserLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.WarnContext(ctx, "last login update failed", "user_id", user.ID, "err", err)
	}

	return &dto.AuthCheckDTO{
		Authenticated: true,
		User:          toUserDTO(user),
		Token:         token,
	}, nil
}

// UpdateAvatar 上传头像到对象存储并回写公共访问地址
func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, userID uint64, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return "", ErrFileNotSupported
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectName := fmt.Sprintf("avatar/%d/%s%s", userID, uuid.NewString(), ext)
	if _, err := minio.UploadFile(ctx, objectName, src, file.Size, file.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	url := minio.GetPublicURL(objectName)
	if err := s.userRepo.UpdateUserAvatar(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	out.UserID = user.ID
	return out
}
