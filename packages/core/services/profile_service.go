package services

import (
	"errors"
	"fmt"

	"fairway-api/packages/core/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// ParseProfileID parses a profile id coming from a request.
func ParseProfileID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidProfileID, raw)
	}
	return id, nil
}

func (s *ProfileService) GetProfileByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile

	result := s.db.First(&profile, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &profile, nil
}

func (s *ProfileService) CreateProfile(req models.CreateProfileRequest) (*models.Profile, error) {
	if err := s.ensureUsernameFree(req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Username:   req.Username,
		FullName:   req.FullName,
		SkillIndex: models.SkillIndexFromPtr(req.SkillIndex),
	}

	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile changes profile fields. A new profile skill index only affects
// groups joined afterwards; existing memberships keep their own index.
func (s *ProfileService) UpdateProfile(id uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfileByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Username != nil && *req.Username != profile.Username {
		if err := s.ensureUsernameFree(*req.Username, id); err != nil {
			return nil, err
		}
		updates["username"] = *req.Username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.SkillIndex != nil {
		updates["skill_index"] = models.NewSkillIndex(*req.SkillIndex)
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetProfileByID(id)
}

func (s *ProfileService) GetAllProfiles(orderBy string, direction string, page int, pageSize int) (*models.PaginatedProfilesResponse, error) {
	var profiles []models.Profile
	var total int64

	allowedOrderBy := map[string]bool{
		"created_at":  true,
		"username":    true,
		"skill_index": true,
	}
	if !allowedOrderBy[orderBy] {
		orderBy = "created_at"
	}
	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}

	if err := s.db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order(orderBy + " " + direction).
		Offset(offset).
		Limit(pageSize).
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedProfilesResponse{
		Data:       profiles,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *ProfileService) ensureUsernameFree(username string, owner uuid.UUID) error {
	var existing models.Profile
	err := s.db.Unscoped().Where("username = ?", username).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == owner {
		return nil
	}
	return ErrUsernameTaken
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
