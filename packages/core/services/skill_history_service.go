package services

import (
	"fairway-api/packages/core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillHistoryService struct {
	db *gorm.DB
}

func NewSkillHistoryService(db *gorm.DB) *SkillHistoryService {
	return &SkillHistoryService{
		db: db,
	}
}

func (s *SkillHistoryService) GetRecentChanges(limit int) ([]models.SkillIndexHistory, error) {
	var history []models.SkillIndexHistory

	result := s.db.Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Preload("Profile").
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}

// GetMemberHistory returns a member's index changes in a group, oldest first.
func (s *SkillHistoryService) GetMemberHistory(groupID uint, profileID uuid.UUID) ([]models.SkillIndexHistory, error) {
	var history []models.SkillIndexHistory

	result := s.db.Where("group_id = ? AND profile_id = ?", groupID, profileID).
		Order("id ASC").
		Preload("Match").
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}
