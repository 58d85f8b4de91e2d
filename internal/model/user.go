package model

import (
	"time"
)

type User struct {
	ID           uint64  `gorm:"primaryKey"`
	Username     string  `gorm:"type:varchar(50)"`
	Email        string  `gorm:"type:varchar(100);index:idx_email"`
	Password     *string `gorm:"type:varchar(255)"`
	FirebaseUID  string  `gorm:"type:varchar(128);uniqueIndex:idx_firebase_uid"`
	AvatarURL    string  `gorm:"type:varchar(255)"`
	IsPro        bool    `gorm:"type:tinyint(1);default:0"`
	IsFirstLogin bool    `gorm:"type:tinyint(1);default:1"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
