package cron

import (
	"fairway-api/packages/core/services"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultSweepSchedule runs the adjustment sweep every 15 minutes.
const DefaultSweepSchedule = "0 */15 * * * *"

type Scheduler struct {
	cron         *cron.Cron
	sweepService *services.AdjustmentSweepService
	schedule     string
}

func NewScheduler(sweepService *services.AdjustmentSweepService, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	logger := logrus.WithField("component", "cron")
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.PrintfLogger(logger)))

	return &Scheduler{
		cron:         c,
		sweepService: sweepService,
		schedule:     schedule,
	}
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	logrus.WithField("schedule", s.schedule).Info("starting cron scheduler")

	if _, err := s.cron.AddFunc(s.schedule, s.runAdjustmentSweep); err != nil {
		logrus.WithError(err).Error("error scheduling adjustment sweep")
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	logrus.Info("stopping cron scheduler")
	<-s.cron.Stop().Done()
	logrus.Info("cron scheduler stopped")
}

func (s *Scheduler) runAdjustmentSweep() {
	pending, err := s.sweepService.GetPendingCount()
	if err != nil {
		logrus.WithError(err).Error("error counting pending skill adjustments")
		return
	}

	if pending == 0 {
		logrus.Debug("no pending skill adjustments to sweep")
		return
	}

	applied, err := s.sweepService.SweepPendingAdjustments()
	if err != nil {
		logrus.WithError(err).Error("adjustment sweep failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"pending": pending,
		"applied": applied,
	}).Info("adjustment sweep completed")
}

// RunNow triggers the adjustment sweep outside the schedule.
func (s *Scheduler) RunNow() {
	logrus.Info("manually triggering adjustment sweep")
	s.runAdjustmentSweep()
}
