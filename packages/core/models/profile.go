package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillIndex is a nullable skill index. It marshals to a JSON number or null.
type SkillIndex struct {
	sql.NullFloat64
}

func NewSkillIndex(v float64) SkillIndex {
	return SkillIndex{sql.NullFloat64{Float64: v, Valid: true}}
}

// SkillIndexFromPtr maps an optional request value onto a SkillIndex.
func SkillIndexFromPtr(v *float64) SkillIndex {
	if v == nil {
		return SkillIndex{}
	}
	return NewSkillIndex(*v)
}

func (s SkillIndex) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Float64)
}

func (s *SkillIndex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		s.Valid = false
		s.Float64 = 0
		return nil
	}
	if err := json.Unmarshal(data, &s.Float64); err != nil {
		return err
	}
	s.Valid = true
	return nil
}

// Profile is a player's global profile. SkillIndex is the profile-level
// index (PHI) used to seed group memberships.
type Profile struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username   string         `gorm:"size:255;not null;uniqueIndex" json:"username"`
	FullName   string         `gorm:"size:255" json:"full_name"`
	SkillIndex SkillIndex     `json:"skill_index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Memberships []GroupMember `gorm:"foreignKey:ProfileID" json:"memberships,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CreateProfileRequest struct {
	Username   string   `json:"username" binding:"required,min=2,max=255"`
	FullName   string   `json:"full_name,omitempty"`
	SkillIndex *float64 `json:"skill_index,omitempty" binding:"omitempty,gte=-10,lte=54"`
}

type UpdateProfileRequest struct {
	Username   *string  `json:"username,omitempty" binding:"omitempty,min=2,max=255"`
	FullName   *string  `json:"full_name,omitempty"`
	SkillIndex *float64 `json:"skill_index,omitempty" binding:"omitempty,gte=-10,lte=54"`
}

type PaginatedProfilesResponse struct {
	Data       []Profile `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
