package repository

import (
	"Pulse/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepo interface {
	GetCache(ctx context.Context, userID uint64, platform string, windowDays int) (*model.StatsCache, error)
	UpsertCache(ctx context.Context, cache *model.StatsCache) error
	ListCacheByUser(ctx context.Context, userID uint64, windowDays int) ([]*model.StatsCache, error)
	ListAllCache(ctx context.Context) ([]*model.StatsCache, error)
	GetLatestSnapshotBefore(ctx context.Context, userID uint64, platform string, windowDays int, before time.Time) (*model.StatsSnapshot, error)
	UpsertSnapshot(ctx context.Context, snapshot *model.StatsSnapshot) error
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db: db}
}

func (s *StatsRepoImpl) GetCache(ctx context.Context, userID uint64, platform string, windowDays int) (*model.StatsCache, error) {
	cache := &model.StatsCache{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform = ? AND window_days = ?", userID, platform, windowDays).
		First(&cache)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return cache, nil
}

// UpsertCache 仅在成功拉取后调用，按 (user_id, platform, window_days) 覆盖写入
func (s *StatsRepoImpl) UpsertCache(ctx context.Context, cache *model.StatsCache) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "window_days"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"followers", "follower_growth",
				"views", "view_growth",
				"engagement", "engagement_growth",
				"posts_json", "source", "last_updated", "updated_at",
			}),
		}).
		Create(cache)
	return result.Error
}

func (s *StatsRepoImpl) ListCacheByUser(ctx context.Context, userID uint64, windowDays int) ([]*model.StatsCache, error) {
	caches := make([]*model.StatsCache, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND window_days = ?", userID, windowDays).
		Find(&caches)
	if result.Error != nil {
		return nil, result.Error
	}
	return caches, nil
}

func (s *StatsRepoImpl) GetLatestSnapshotBefore(ctx context.Context, userID uint64, platform string, windowDays int, before time.Time) (*model.StatsSnapshot, error) {
	snapshot := &model.StatsSnapshot{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform = ? AND window_days = ? AND snapshot_date < ?", userID, platform, windowDays, before).
		Order("snapshot_date DESC").
		First(&snapshot)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return snapshot, nil
}

func (s *StatsRepoImpl) UpsertSnapshot(ctx context.Context, snapshot *model.StatsSnapshot) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}, {Name: "window_days"}, {Name: "snapshot_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"followers", "views", "engagement",
			}),
		}).
		Create(snapshot)
	return result.Error
}

// ListAllCache 返回全部缓存条目，供每日快照任务遍历
func (s *StatsRepoImpl) ListAllCache(ctx context.Context) ([]*model.StatsCache, error) {
	caches := make([]*model.StatsCache, 0)
	result := s.db.WithContext(ctx).Find(&caches)
	if result.Error != nil {
		return nil, result.Error
	}
	return caches, nil
}
