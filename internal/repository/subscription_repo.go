package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SubscriptionRepo interface {
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	GetActiveByUserId(ctx context.Context, userID uint64, now time.Time) (*model.Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, id uint64, status string) error
}

type SubscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &SubscriptionRepoImpl{db: db}
}

func (s *SubscriptionRepoImpl) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	result := s.db.WithContext(ctx).Create(sub)
	return result.Error
}

// GetActiveByUserId 历史订阅保留，读取时取最近一条仍在有效期内的 active 记录
func (s *SubscriptionRepoImpl) GetActiveByUserId(ctx context.Context, userID uint64, now time.Time) (*model.Subscription, error) {
	sub := &model.Subscription{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND end_date > ?", userID, "active", now).
		Order("end_date DESC").
		First(&sub)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return sub, nil
}

func (s *SubscriptionRepoImpl) UpdateSubscriptionStatus(ctx context.Context, id uint64, status string) error {
	result := s.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("id = ?", id).
		Update("status", status)
	return result.Error
}
