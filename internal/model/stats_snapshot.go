package model

import "time"

// StatsSnapshot 上一周期的计数快照，用于环比增长计算
type StatsSnapshot struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_snapshot_entry,priority:1"`
	Platform     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_snapshot_entry,priority:2"`
	WindowDays   int       `gorm:"not null;uniqueIndex:idx_snapshot_entry,priority:3"`
	SnapshotDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_snapshot_entry,priority:4"`
	Followers    int64     `gorm:"not null;default:0"`
	Views        int64     `gorm:"not null;default:0"`
	Engagement   int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}
