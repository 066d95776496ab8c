package services

import (
	"errors"
	"fmt"
	"time"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/metrics"
	"fairway-api/packages/core/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillIndexService struct {
	db *gorm.DB
}

func NewSkillIndexService(db *gorm.DB) *SkillIndexService {
	return &SkillIndexService{
		db: db,
	}
}

// ApplyMatchAdjustments moves the group skill index of every player of a
// completed match. It runs at most once per match: the match row is locked
// and the pass is skipped unless the adjustment is still pending. Each
// membership row is locked before it is read, so concurrent passes touching
// the same player are serialised.
func (s *SkillIndexService) ApplyMatchAdjustments(matchID uint) (*models.AdjustmentReport, error) {
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

	report := &models.AdjustmentReport{
		MatchID:  match.ID,
		Status:   match.SkillAdjustment,
		Adjusted: []models.PlayerAdjustment{},
		Skipped:  []uuid.UUID{},
	}

	if match.Status != string(handicap.StatusCompleted) {
		tx.Rollback()
		return nil, fmt.Errorf("%w: match %d is %s", ErrInvalidStatus, match.ID, match.Status)
	}
	if match.SkillAdjustment != models.AdjustmentPending {
		tx.Rollback()
		return report, nil
	}

	var teams []models.Team
	if err := tx.Preload("Players").
		Where("match_id = ?", match.ID).
		Order("team_number ASC").
		Find(&teams).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	net := make([]int, len(teams))
	for i, team := range teams {
		if team.NetScore == nil {
			tx.Rollback()
			return nil, fmt.Errorf("match %d team %d has no net score", match.ID, team.TeamNumber)
		}
		net[i] = *team.NetScore
	}

	outcome := handicap.ClassifyOutcome(net)
	if outcome.Sides() != 2 {
		if err := s.finish(tx, &match, models.AdjustmentUnsupported); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"match_id": match.ID,
			"sides":    outcome.Sides(),
		}).Warn("skill index adjustment is only defined for two-sided matches, skipping")
		metrics.AdjustmentPasses.WithLabelValues(models.AdjustmentUnsupported).Inc()
		report.Status = models.AdjustmentUnsupported
		return report, nil
	}

	for side, team := range teams {
		differential, err := outcome.Differential(side)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		for _, player := range team.Players {
			adjustment, err := s.adjustPlayer(tx, &match, player.ProfileID, differential)
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			if adjustment == nil {
				report.Skipped = append(report.Skipped, player.ProfileID)
				metrics.SkillAdjustments.WithLabelValues("skipped").Inc()
				continue
			}
			report.Adjusted = append(report.Adjusted, *adjustment)
			metrics.SkillAdjustments.WithLabelValues("applied").Inc()
		}
	}

	if err := s.finish(tx, &match, models.AdjustmentApplied); err != nil {
		return nil, err
	}

	metrics.AdjustmentPasses.WithLabelValues(models.AdjustmentApplied).Inc()
	report.Status = models.AdjustmentApplied

	logrus.WithFields(logrus.Fields{
		"match_id": match.ID,
		"adjusted": len(report.Adjusted),
		"skipped":  len(report.Skipped),
	}).Info("skill indexes adjusted")

	return report, nil
}

// adjustPlayer updates one membership and writes its history row. It returns
// nil without error when the player no longer belongs to the group.
func (s *SkillIndexService) adjustPlayer(tx *gorm.DB, match *models.Match, profileID uuid.UUID, differential float64) (*models.PlayerAdjustment, error) {
	var member models.GroupMember
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("group_id = ? AND profile_id = ?", match.GroupID, profileID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithFields(logrus.Fields{
			"match_id":   match.ID,
			"group_id":   match.GroupID,
			"profile_id": profileID,
		}).Warn("player has no membership in the match group, skipping adjustment")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	current := member.SkillIndex.Float64
	if !member.SkillIndex.Valid {
		var profile models.Profile
		if err := tx.Unscoped().First(&profile, "id = ?", profileID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		current = handicap.ResolveSkillIndex(member.SkillIndex.NullFloat64, profile.SkillIndex.NullFloat64)
	}

	played, err := s.countPriorMatches(tx, match, profileID)
	if err != nil {
		return nil, err
	}

	after := handicap.AdjustSkillIndex(current, int(played), differential, match.HolesPlayed)

	if err := tx.Model(&member).Update("skill_index", models.NewSkillIndex(after)).Error; err != nil {
		return nil, err
	}

	history := models.SkillIndexHistory{
		GroupID:       match.GroupID,
		ProfileID:     profileID,
		MatchID:       match.ID,
		IndexBefore:   current,
		IndexAfter:    after,
		IndexChange:   handicap.Round1(after - current),
		Differential:  differential,
		MatchesPlayed: int(played),
		HolesPlayed:   match.HolesPlayed,
	}
	if err := tx.Create(&history).Error; err != nil {
		return nil, err
	}

	return &models.PlayerAdjustment{
		ProfileID:     profileID,
		IndexBefore:   current,
		IndexAfter:    after,
		Differential:  differential,
		MatchesPlayed: int(played),
	}, nil
}

// countPriorMatches counts the completed matches the player finished in the
// group before this one.
func (s *SkillIndexService) countPriorMatches(tx *gorm.DB, match *models.Match, profileID uuid.UUID) (int64, error) {
	var count int64

	query := tx.Model(&models.TeamPlayer{}).
		Joins("JOIN matches ON matches.id = team_players.match_id").
		Where("team_players.profile_id = ?", profileID).
		Where("matches.group_id = ? AND matches.status = ? AND matches.id <> ?",
			match.GroupID, string(handicap.StatusCompleted), match.ID).
		Where("matches.deleted_at IS NULL")
	if match.CompletedAt != nil {
		query = query.Where("matches.completed_at <= ?", *match.CompletedAt)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// finish records the adjustment state and commits the pass.
func (s *SkillIndexService) finish(tx *gorm.DB, match *models.Match, state string) error {
	if err := tx.Model(match).Updates(map[string]interface{}{
		"skill_adjustment": state,
		"adjusted_at":      time.Now(),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// GetPendingMatches lists completed matches whose adjustment pass has not run
// and that completed before cutoff.
func (s *SkillIndexService) GetPendingMatches(cutoff time.Time) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Where("status = ? AND skill_adjustment = ? AND completed_at < ?",
		string(handicap.StatusCompleted), models.AdjustmentPending, cutoff).
		Order("completed_at ASC").
		Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}
