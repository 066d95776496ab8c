package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Slug        string         `gorm:"size:255;unique;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	NbMembers   int            `gorm:"default:0" json:"nb_members"`
	NbMatches   int            `gorm:"default:0" json:"nb_matches"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupMember is a profile's membership of a group. SkillIndex is the group
// skill index (GSI): seeded from the profile index at join time and changed
// afterwards only by match results.
type GroupMember struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID    uint       `gorm:"not null;uniqueIndex:idx_group_members_group_profile;constraint:OnDelete:CASCADE" json:"group_id"`
	ProfileID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_profile;constraint:OnDelete:CASCADE" json:"profile_id"`
	SkillIndex SkillIndex `json:"skill_index"`
	JoinedAt   time.Time  `json:"joined_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

// DTOs

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type JoinGroupRequest struct {
	ProfileID string `json:"profile_id" binding:"required,uuid"`
}

// Responses

type PaginatedGroupsResponse struct {
	Data       []Group `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}
