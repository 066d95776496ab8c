package services

import (
	"errors"
	"fmt"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

// rosterPlayer is one player of a team assignment with the skill index that
// was resolved for this match.
type rosterPlayer struct {
	profileID  uuid.UUID
	skillIndex float64
}

// AssignTeams splits group members into teams and freezes every handicap the
// match will be scored with. Each player's skill index is read once here;
// later index changes never touch the frozen values.
func (s *TeamService) AssignTeams(matchID uint, req models.AssignTeamsRequest) (*models.Match, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var match models.Match
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&match, matchID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if !handicap.Status(match.Status).CanTransition(handicap.StatusTeamsReady) {
		tx.Rollback()
		return nil, fmt.Errorf("%w: cannot assign teams to a %s match", ErrInvalidStatus, match.Status)
	}

	format, err := handicap.ParseFormat(match.Format)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	var course models.Course
	if err := tx.First(&course, match.CourseID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	rosters, err := s.resolveRosters(tx, match.GroupID, req.Teams)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	sides := make([][]float64, len(rosters))
	for i, roster := range rosters {
		sides[i] = make([]float64, len(roster))
		for j, player := range roster {
			sides[i][j] = player.skillIndex
		}
	}

	plan, err := handicap.PlanTeams(format, match.HolesPlayed, course.Attributes(), sides, req.StrokesOverride)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	for i, side := range plan.Sides {
		team := models.Team{
			MatchID:         match.ID,
			TeamNumber:      i + 1,
			Handicap:        side.Handicap,
			HandicapStrokes: side.Strokes,
		}
		if err := tx.Create(&team).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		for j, player := range rosters[i] {
			teamPlayer := models.TeamPlayer{
				TeamID:         team.ID,
				MatchID:        match.ID,
				ProfileID:      player.profileID,
				SkillIndex:     player.skillIndex,
				CourseHandicap: side.PlayerHandicaps[j],
			}
			if err := tx.Create(&teamPlayer).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Model(&match).Updates(map[string]interface{}{
		"status":             string(handicap.StatusTeamsReady),
		"strokes_overridden": plan.Overridden,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"match_id":   match.ID,
		"format":     match.Format,
		"teams":      len(plan.Sides),
		"overridden": plan.Overridden,
	}).Info("teams assigned")

	return loadMatch(s.db, match.ID)
}

// resolveRosters checks that every player is a member of the group and plays
// for one team only, and resolves each player's skill index.
func (s *TeamService) resolveRosters(tx *gorm.DB, groupID uint, teams []models.TeamAssignment) ([][]rosterPlayer, error) {
	seen := make(map[uuid.UUID]bool)
	rosters := make([][]rosterPlayer, len(teams))

	for i, team := range teams {
		rosters[i] = make([]rosterPlayer, 0, len(team.ProfileIDs))
		for _, raw := range team.ProfileIDs {
			profileID, err := ParseProfileID(raw)
			if err != nil {
				return nil, err
			}
			if seen[profileID] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, profileID)
			}
			seen[profileID] = true

			var member models.GroupMember
			err = tx.Preload("Profile").
				Where("group_id = ? AND profile_id = ?", groupID, profileID).
				First(&member).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: %s", ErrNotGroupMember, profileID)
				}
				return nil, err
			}

			rosters[i] = append(rosters[i], rosterPlayer{
				profileID:  profileID,
				skillIndex: handicap.ResolveSkillIndex(member.SkillIndex.NullFloat64, member.Profile.SkillIndex.NullFloat64),
			})
		}
	}

	return rosters, nil
}
