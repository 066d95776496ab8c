package services

import (
	"errors"
	"fmt"
	"time"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/metrics"
	"fairway-api/packages/core/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchService struct {
	db                *gorm.DB
	skillIndexService *SkillIndexService
}

func NewMatchService(db *gorm.DB, skillIndexService *SkillIndexService) *MatchService {
	return &MatchService{
		db:                db,
		skillIndexService: skillIndexService,
	}
}

// MatchFilter narrows GetMatches. Nil fields are ignored.
type MatchFilter struct {
	GroupID *uint
	Status  *string
}

func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	format, err := handicap.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	if err := handicap.ValidateHoles(req.HolesPlayed); err != nil {
		return nil, err
	}

	var group models.Group
	if err := s.db.First(&group, req.GroupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := s.db.First(&course, req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	match := models.Match{
		GroupID:         group.ID,
		CourseID:        course.ID,
		Format:          string(format),
		HolesPlayed:     req.HolesPlayed,
		Status:          string(handicap.StatusPending),
		SkillAdjustment: models.AdjustmentPending,
		ScheduledAt:     req.ScheduledAt,
	}

	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}

	return loadMatch(s.db, match.ID)
}

func (s *MatchService) GetMatchByID(id uint) (*models.Match, error) {
	return loadMatch(s.db, id)
}

func (s *MatchService) GetMatches(filter MatchFilter, page, pageSize int) (*models.PaginatedMatchResponse, error) {
	var matches []models.Match
	var total int64

	baseQuery := s.db.Model(&models.Match{})
	if filter.GroupID != nil {
		baseQuery = baseQuery.Where("group_id = ?", *filter.GroupID)
	}
	if filter.Status != nil {
		baseQuery = baseQuery.Where("status = ?", *filter.Status)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.Order("created_at DESC").
		Preload("Course").
		Preload("Teams", orderedTeams).
		Offset(offset).
		Limit(pageSize).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedMatchResponse{
		Data:       matches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// SubmitScores records the gross score of every team, settles the match and
// then runs the skill index adjustment pass. A failed adjustment pass does not
// fail the submission: the match stays completed and the sweep retries it.
func (s *MatchService) SubmitScores(matchID uint, req models.SubmitScoresRequest) (*models.Match, *models.AdjustmentReport, error) {
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
			return nil, nil, ErrMatchNotFound
		}
		return nil, nil, err
	}

	if !handicap.Status(match.Status).CanTransition(handicap.StatusCompleted) {
		tx.Rollback()
		return nil, nil, fmt.Errorf("%w: cannot submit scores for a %s match", ErrInvalidStatus, match.Status)
	}

	var teams []models.Team
	if err := tx.Where("match_id = ?", match.ID).Order("team_number ASC").Find(&teams).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	sides, err := scoreSides(teams, req.Scores)
	if err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	settlement, err := handicap.Settle(sides)
	if err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	for i := range teams {
		side := settlement.Sides[i]
		if err := tx.Model(&teams[i]).Updates(map[string]interface{}{
			"gross_score": side.Gross,
			"net_score":   side.Net,
			"is_winner":   side.Winner,
		}).Error; err != nil {
			tx.Rollback()
			return nil, nil, err
		}
	}

	now := time.Now()
	if err := tx.Model(&match).Updates(map[string]interface{}{
		"status":       string(handicap.StatusCompleted),
		"completed_at": now,
	}).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Model(&models.Group{}).Where("id = ?", match.GroupID).
		Update("nb_matches", gorm.Expr("nb_matches + 1")).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	metrics.MatchesCompleted.WithLabelValues(match.Format).Inc()

	report, err := s.skillIndexService.ApplyMatchAdjustments(match.ID)
	if err != nil {
		logrus.WithError(err).WithField("match_id", match.ID).
			Error("skill index adjustment failed, left pending for the sweep")
		metrics.AdjustmentPasses.WithLabelValues("failed").Inc()
		report = nil
	}

	completed, err := loadMatch(s.db, match.ID)
	if err != nil {
		return nil, nil, err
	}

	return completed, report, nil
}

// scoreSides pairs submitted gross scores with the teams of a match, in team
// number order. Every team must be scored exactly once.
func scoreSides(teams []models.Team, scores []models.TeamScore) ([]handicap.SideScore, error) {
	known := make(map[int]bool, len(teams))
	for _, team := range teams {
		known[team.TeamNumber] = true
	}

	gross := make(map[int]int, len(scores))
	for _, score := range scores {
		if !known[score.TeamNumber] {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTeam, score.TeamNumber)
		}
		if score.GrossScore == nil {
			return nil, fmt.Errorf("%w: team %d", ErrMissingScore, score.TeamNumber)
		}
		if _, dup := gross[score.TeamNumber]; dup {
			return nil, fmt.Errorf("%w: team %d", ErrDuplicateScore, score.TeamNumber)
		}
		gross[score.TeamNumber] = *score.GrossScore
	}

	sides := make([]handicap.SideScore, len(teams))
	for i, team := range teams {
		g, ok := gross[team.TeamNumber]
		if !ok {
			return nil, fmt.Errorf("%w: team %d", ErrMissingScore, team.TeamNumber)
		}
		sides[i] = handicap.SideScore{Gross: g, Strokes: team.HandicapStrokes}
	}
	return sides, nil
}

func orderedTeams(db *gorm.DB) *gorm.DB {
	return db.Order("team_number ASC")
}

func loadMatch(db *gorm.DB, id uint) (*models.Match, error) {
	var match models.Match

	result := db.Preload("Group").
		Preload("Course").
		Preload("Teams", orderedTeams).
		Preload("Teams.Players.Profile").
		First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &match, nil
}
