package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	UpdateUserIsPro(ctx context.Context, id uint64, isPro bool) (int64, error)
	UpdateUserFirstLogin(ctx context.Context, id uint64, isFirstLogin bool) error
	UpdateUserAvatar(ctx context.Context, id uint64, avatarURL string) error
	UpdateUserLastLogin(ctx context.Context, id uint64, at time.Time) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where("firebase_uid = ?", firebaseUID).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Create(user)
	return result.Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *UserRepoImpl) UpdateUserIsPro(ctx context.Context, id uint64, isPro bool) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_pro", isPro)

	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) UpdateUserFirstLogin(ctx context.Context, id uint64, isFirstLogin bool) error {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_first_login", isFirstLogin)
	return result.Error
}

func (s *UserRepoImpl) UpdateUserAvatar(ctx context.Context, id uint64, avatarURL string) error {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)
	return result.Error
}

func (s *UserRepoImpl) UpdateUserLastLogin(ctx context.Context, id uint64, at time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	return result.Error
}
