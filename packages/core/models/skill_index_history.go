package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillIndexHistory struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID       uint      `gorm:"not null;index" json:"group_id"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index" json:"profile_id"`
	MatchID       uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"match_id"`
	IndexBefore   float64   `gorm:"not null" json:"index_before"`
	IndexAfter    float64   `gorm:"not null" json:"index_after"`
	IndexChange   float64   `gorm:"not null" json:"index_change"`
	Differential  float64   `gorm:"not null" json:"differential"`
	MatchesPlayed int       `gorm:"not null" json:"matches_played"`
	HolesPlayed   int       `gorm:"not null" json:"holes_played"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
	Match   Match   `gorm:"foreignKey:MatchID;references:ID" json:"match,omitempty"`
}

func (SkillIndexHistory) TableName() string {
	return "skill_index_history"
}

// PlayerAdjustment is one player's skill index change after a match.
type PlayerAdjustment struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	IndexBefore   float64   `json:"index_before"`
	IndexAfter    float64   `json:"index_after"`
	Differential  float64   `json:"differential"`
	MatchesPlayed int       `json:"matches_played"`
}

// AdjustmentReport summarises one adjustment pass over a completed match.
// Skipped lists players whose group membership could not be found.
type AdjustmentReport struct {
	MatchID  uint               `json:"match_id"`
	Status   string             `json:"status"`
	Adjusted []PlayerAdjustment `json:"adjusted"`
	Skipped  []uuid.UUID        `json:"skipped"`
}
