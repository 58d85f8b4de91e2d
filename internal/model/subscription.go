package model

import "time"

type Subscription struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:idx_sub_user"`
	Plan      string `gorm:"type:varchar(20);not null"`
	PaymentID string `gorm:"type:varchar(64)"`
	OrderID   string `gorm:"type:varchar(64)"`
	StartDate time.Time
	EndDate   time.Time
	Status    string `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Subscription) TableName() string {
	return "subscriptions"
}
