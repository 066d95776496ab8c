package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID         uint      `gorm:"not null;uniqueIndex:idx_teams_match_number;constraint:OnDelete:CASCADE" json:"match_id"`
	TeamNumber      int       `gorm:"not null;uniqueIndex:idx_teams_match_number" json:"team_number"`
	Handicap        float64   `gorm:"not null;default:0" json:"handicap"`
	HandicapStrokes int       `gorm:"not null;default:0" json:"handicap_strokes"`
	GrossScore      *int      `json:"gross_score"`
	NetScore        *int      `json:"net_score"`
	IsWinner        bool      `gorm:"default:false" json:"is_winner"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Players []TeamPlayer `gorm:"foreignKey:TeamID" json:"players,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamPlayer is the per-player match record. CourseHandicap is frozen when
// teams are assigned and is never recomputed.
type TeamPlayer struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID         uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"team_id"`
	MatchID        uint      `gorm:"not null;uniqueIndex:idx_team_players_match_profile" json:"match_id"`
	ProfileID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_players_match_profile" json:"profile_id"`
	SkillIndex     float64   `gorm:"not null" json:"skill_index"`
	CourseHandicap float64   `gorm:"not null" json:"course_handicap"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Profile Profile `gorm:"foreignKey:ProfileID;references:ID" json:"profile,omitempty"`
}

func (TeamPlayer) TableName() string {
	return "team_players"
}
