package model

import "time"

// 缓存条目的来源状态
const (
	SourceSample   = "sample"
	SourceLive     = "live"
	SourceDegraded = "degraded"
)

// PlatformStats 标准化后的平台统计，适配器输出与接口返回共用
type PlatformStats struct {
	Platform         string    `json:"platform"`
	Followers        int64     `json:"followers"`
	FollowerGrowth   float64   `json:"followerGrowth"`
	Views            int64     `json:"views"`
	ViewGrowth       float64   `json:"viewGrowth"`
	Engagement       int64     `json:"engagement"`
	EngagementGrowth float64   `json:"engagementGrowth"`
	Posts            []*Post   `json:"posts"`
	LastUpdated      time.Time `json:"lastUpdated"`
	Connected        bool      `json:"connected"`
	Source           string    `json:"source"`

	// 实时拉取降级为缓存数据时的错误注解
	IsError  bool   `json:"isError,omitempty"`
	ErrorMsg string `json:"error,omitempty"`
}

// StatsCache 按 (user_id, platform, window_days) 持久化的最近成功快照
type StatsCache struct {
	ID               uint64 `gorm:"primaryKey"`
	UserID           uint64 `gorm:"not null;uniqueIndex:idx_cache_entry,priority:1"`
	Platform         string `gorm:"type:varchar(20);not null;uniqueIndex:idx_cache_entry,priority:2"`
	WindowDays       int    `gorm:"not null;uniqueIndex:idx_cache_entry,priority:3"`
	Followers        int64  `gorm:"not null;default:0"`
	FollowerGrowth   float64
	Views            int64 `gorm:"not null;default:0"`
	ViewGrowth       float64
	Engagement       int64 `gorm:"not null;default:0"`
	EngagementGrowth float64
	PostsJSON        string `gorm:"type:json;column:posts_json"`
	Source           string `gorm:"type:varchar(10);not null;default:live"`
	LastUpdated      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (StatsCache) TableName() string {
	return "platform_stats_cache"
}
