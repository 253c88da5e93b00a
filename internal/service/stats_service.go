package service

import (
	"errors"
	"fmt"

	"github.com/blogsmith/internal/db"
	"gorm.io/gorm"
)

// UserStats is the counter snapshot returned to the dashboard.
type UserStats struct {
	TotalBlogs     int64 `json:"total_blogs"`
	TotalDownloads int64 `json:"total_downloads"`
}

// StatsService maintains per-user lifetime counters alongside the live
// blog count.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a StatsService instance.
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// RecordGeneration bumps the generated counter for a user. Guests are
// skipped silently.
func (s *StatsService) RecordGeneration(userID uint, count int64) error {
	if userID == 0 || count <= 0 {
		return nil
	}
	return s.increment(userID, "blogs_generated", count)
}

// RecordDownload bumps the download counter for a user. Guests are skipped
// silently.
func (s *StatsService) RecordDownload(userID uint) error {
	if userID == 0 {
		return nil
	}
	return s.increment(userID, "downloads", 1)
}

func (s *StatsService) increment(userID uint, column string, delta int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var stat db.UserStat
		if err := tx.Where("user_id = ?", userID).First(&stat).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			stat = db.UserStat{UserID: userID}
			if err := tx.Create(&stat).Error; err != nil {
				return err
			}
		}
		return tx.Model(&stat).Update(column, gorm.Expr(column+" + ?", delta)).Error
	})
}

// Get returns the counters for a user. The blog total reflects the live
// row count so deletions are visible immediately.
func (s *StatsService) Get(userID uint) (UserStats, error) {
	if userID == 0 {
		return UserStats{}, nil
	}

	var blogCount int64
	if err := s.db.Model(&db.Blog{}).Where("user_id = ?", userID).Count(&blogCount).Error; err != nil {
		return UserStats{}, fmt.Errorf("count user blogs: %w", err)
	}

	var stat db.UserStat
	if err := s.db.Where("user_id = ?", userID).First(&stat).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return UserStats{}, err
		}
	}

	return UserStats{
		TotalBlogs:     blogCount,
		TotalDownloads: stat.Downloads,
	}, nil
}
