package models

import (
	"time"

	"gorm.io/gorm"
)

// Skill adjustment states of a match.
const (
	AdjustmentPending     = "pending"
	AdjustmentApplied     = "applied"
	AdjustmentUnsupported = "unsupported"
)

type Match struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID           uint           `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"group_id"`
	CourseID          uint           `gorm:"not null;index" json:"course_id"`
	Format            string         `gorm:"size:20;not null" json:"format"`
	HolesPlayed       int            `gorm:"not null;default:18" json:"holes_played"`
	Status            string         `gorm:"size:20;default:pending;index" json:"status"` // pending, teams_ready, completed
	StrokesOverridden bool           `gorm:"default:false" json:"strokes_overridden"`
	SkillAdjustment   string         `gorm:"size:20;default:pending;index" json:"skill_adjustment"` // pending, applied, unsupported
	ScheduledAt       *time.Time     `json:"scheduled_at"`
	CompletedAt       *time.Time     `json:"completed_at"`
	AdjustedAt        *time.Time     `json:"adjusted_at"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Group  Group  `gorm:"foreignKey:GroupID;references:ID" json:"group,omitempty"`
	Course Course `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Teams  []Team `gorm:"foreignKey:MatchID" json:"teams,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

type PaginatedMatchResponse struct {
	Data       []Match `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type CreateMatchRequest struct {
	GroupID     uint       `json:"group_id" binding:"required"`
	CourseID    uint       `json:"course_id" binding:"required"`
	Format      string     `json:"format" binding:"required,oneof=stroke_play match_play 2v2_scramble best_ball shamble"`
	HolesPlayed int        `json:"holes_played" binding:"required,oneof=9 18"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// TeamAssignment lists the players of one side. Sides are numbered in
// request order starting at 1.
type TeamAssignment struct {
	ProfileIDs []string `json:"profile_ids" binding:"required,min=1,dive,uuid"`
}

type AssignTeamsRequest struct {
	Teams []TeamAssignment `json:"teams" binding:"required,min=1,dive"`
	// StrokesOverride replaces the computed relative strokes, one value per team.
	StrokesOverride []int `json:"strokes_override,omitempty"`
}

type TeamScore struct {
	TeamNumber int  `json:"team_number" binding:"required,min=1"`
	GrossScore *int `json:"gross_score" binding:"required"`
}

type SubmitScoresRequest struct {
	Scores []TeamScore `json:"scores" binding:"required,min=1,dive"`
}

type SubmitScoresResponse struct {
	Match      *Match            `json:"match"`
	Adjustment *AdjustmentReport `json:"adjustment,omitempty"`
}
