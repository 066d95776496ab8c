package services

import (
	"time"

	"fairway-api/packages/core/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultSweepGracePeriod leaves freshly completed matches to the inline
// adjustment pass that follows score submission.
const DefaultSweepGracePeriod = time.Minute

type AdjustmentSweepService struct {
	db                *gorm.DB
	skillIndexService *SkillIndexService
	gracePeriod       time.Duration
}

func NewAdjustmentSweepService(db *gorm.DB, skillIndexService *SkillIndexService, gracePeriod time.Duration) *AdjustmentSweepService {
	return &AdjustmentSweepService{
		db:                db,
		skillIndexService: skillIndexService,
		gracePeriod:       gracePeriod,
	}
}

// SweepPendingAdjustments re-runs the adjustment pass for completed matches
// still marked pending. It returns how many passes succeeded.
func (s *AdjustmentSweepService) SweepPendingAdjustments() (int, error) {
	matches, err := s.skillIndexService.GetPendingMatches(time.Now().Add(-s.gracePeriod))
	if err != nil {
		logrus.WithError(err).Error("error finding matches with pending adjustments")
		return 0, err
	}

	if len(matches) == 0 {
		logrus.Debug("no pending skill adjustments")
		return 0, nil
	}

	logrus.WithField("count", len(matches)).Info("sweeping pending skill adjustments")

	applied := 0
	for _, match := range matches {
		report, err := s.skillIndexService.ApplyMatchAdjustments(match.ID)
		if err != nil {
			logrus.WithError(err).WithField("match_id", match.ID).Error("error applying skill adjustments")
			metrics.AdjustmentPasses.WithLabelValues("failed").Inc()
			// Continue with the other matches even if one fails
			continue
		}

		logrus.WithFields(logrus.Fields{
			"match_id": match.ID,
			"status":   report.Status,
		}).Info("swept skill adjustment")
		applied++
	}

	return applied, nil
}

// GetPendingCount returns the number of matches the next sweep would process.
func (s *AdjustmentSweepService) GetPendingCount() (int64, error) {
	matches, err := s.skillIndexService.GetPendingMatches(time.Now().Add(-s.gracePeriod))
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}
