package services

import (
	"time"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	var stats models.Stats

	if err := s.db.Model(&models.Profile{}).Count(&stats.TotalProfiles).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Group{}).Count(&stats.TotalGroups).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).Count(&stats.TotalMatches).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("status = ?", string(handicap.StatusCompleted)).
		Count(&stats.CompletedMatches).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	last7DaysStart := now.AddDate(0, 0, -7)
	previous7DaysStart := now.AddDate(0, 0, -14)

	if err := s.db.Model(&models.Match{}).
		Where("created_at >= ?", last7DaysStart).
		Count(&stats.MatchesLast7Days).Error; err != nil {
		return nil, err
	}

	// 7 to 14 days ago
	if err := s.db.Model(&models.Match{}).
		Where("created_at >= ? AND created_at < ?", previous7DaysStart, last7DaysStart).
		Count(&stats.MatchesPrevious7Days).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
