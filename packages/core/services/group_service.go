package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{
		db: db,
	}
}

func (s *GroupService) CreateGroup(req models.CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		Name:        req.Name,
		Slug:        s.generateUniqueSlug(req.Name),
		Description: req.Description,
	}

	if err := s.db.Create(group).Error; err != nil {
		return nil, err
	}

	return group, nil
}

func (s *GroupService) GetGroupByID(id uint) (*models.Group, error) {
	var group models.Group

	result := s.db.First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	return &group, nil
}

func (s *GroupService) GetAllGroups(page, pageSize int) (*models.PaginatedGroupsResponse, error) {
	var groups []models.Group
	var total int64

	if err := s.db.Model(&models.Group{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedGroupsResponse{
		Data:       groups,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// JoinGroup adds a profile to a group. The membership skill index is seeded
// once from the profile index, or the default index when the profile has none.
func (s *GroupService) JoinGroup(groupID uint, profileID uuid.UUID) (*models.GroupMember, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var group models.Group
	if err := tx.First(&group, groupID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	var profile models.Profile
	if err := tx.First(&profile, "id = ?", profileID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var count int64
	if err := tx.Model(&models.GroupMember{}).
		Where("group_id = ? AND profile_id = ?", groupID, profileID).
		Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count > 0 {
		tx.Rollback()
		return nil, ErrAlreadyMember
	}

	seed := handicap.ResolveSkillIndex(sql.NullFloat64{}, profile.SkillIndex.NullFloat64)
	member := models.GroupMember{
		GroupID:    groupID,
		ProfileID:  profileID,
		SkillIndex: models.NewSkillIndex(seed),
		JoinedAt:   time.Now(),
	}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Group{}).Where("id = ?", groupID).
		Update("nb_members", gorm.Expr("nb_members + 1")).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"group_id":    groupID,
		"profile_id":  profileID,
		"skill_index": seed,
	}).Info("profile joined group")

	member.Profile = profile
	return &member, nil
}

func (s *GroupService) GetMembers(groupID uint) ([]models.GroupMember, error) {
	if _, err := s.GetGroupByID(groupID); err != nil {
		return nil, err
	}

	var members []models.GroupMember
	if err := s.db.Where("group_id = ?", groupID).
		Preload("Profile").
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	return members, nil
}

func (s *GroupService) GetMember(groupID uint, profileID uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember

	result := s.db.Where("group_id = ? AND profile_id = ?", groupID, profileID).
		Preload("Profile").
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, result.Error
	}

	return &member, nil
}

func (s *GroupService) generateSlug(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "group"
	}
	return slug
}

func (s *GroupService) generateUniqueSlug(name string) string {
	baseSlug := s.generateSlug(name)
	slug := baseSlug
	counter := 1

	for {
		var count int64
		s.db.Unscoped().Model(&models.Group{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			break
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}

	return slug
}
