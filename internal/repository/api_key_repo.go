package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type APIKeyRepo interface {
	GetByUserId(ctx context.Context, userID uint64) (*model.APIKey, error)
	Upsert(ctx context.Context, keys *model.APIKey) error
}

type APIKeyRepoImpl struct {
	db *gorm.DB
}

func NewAPIKeyRepo(db *gorm.DB) APIKeyRepo {
	return &APIKeyRepoImpl{db: db}
}

func (s *APIKeyRepoImpl) GetByUserId(ctx context.Context, userID uint64) (*model.APIKey, error) {
	keys := &model.APIKey{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&keys)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return keys, nil
}

// Upsert 按 user_id 做键级原子写入，已存在则就地更新各平台凭据列
func (s *APIKeyRepoImpl) Upsert(ctx context.Context, keys *model.APIKey) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"youtube_key", "instagram_key", "twitter_key", "facebook_key", "updated_at",
			}),
		}).
		Create(keys)
	return result.Error
}
