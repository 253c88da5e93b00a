package db

import "gorm.io/gorm"

// UserStat tracks per-user lifetime counters.
type UserStat struct {
	gorm.Model
	UserID         uint  `gorm:"uniqueIndex;not null" json:"user_id"`
	BlogsGenerated int64 `json:"total_blogs"`
	Downloads      int64 `json:"total_downloads"`
}
