package model

import (
	"Pulse/internal/pkg/consts"
	"time"
)

// APIKey 每用户一行，各平台凭据可单独为空
type APIKey struct {
	ID           uint64  `gorm:"primaryKey"`
	UserID       uint64  `gorm:"not null;uniqueIndex:idx_user"`
	YoutubeKey   *string `gorm:"type:varchar(255)"`
	InstagramKey *string `gorm:"type:varchar(255)"`
	TwitterKey   *string `gorm:"type:varchar(255)"`
	FacebookKey  *string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (APIKey) TableName() string {
	return "api_keys"
}

// KeyFor 按平台标识取凭据，平台集合封闭，未知平台返回 nil
func (s *APIKey) KeyFor(platform string) *string {
	switch platform {
	case consts.PlatformYoutube:
		return s.YoutubeKey
	case consts.PlatformInstagram:
		return s.InstagramKey
	case consts.PlatformTwitter:
		return s.TwitterKey
	case consts.PlatformFacebook:
		return s.FacebookKey
	}
	return nil
}

// SetKeyFor 按平台标识写入凭据
func (s *APIKey) SetKeyFor(platform string, key *string) {
	switch platform {
	case consts.PlatformYoutube:
		s.YoutubeKey = key
	case consts.PlatformInstagram:
		s.InstagramKey = key
	case consts.PlatformTwitter:
		s.TwitterKey = key
	case consts.PlatformFacebook:
		s.FacebookKey = key
	}
}
