// Package metrics holds the Prometheus collectors of the match pipeline.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fairway"

var (
	MatchesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_completed_total",
		Help:      "Matches that reached the completed status, by format.",
	}, []string{"format"})

	SkillAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skill_adjustments_total",
		Help:      "Per-player skill index adjustments, by result (applied or skipped).",
	}, []string{"result"})

	AdjustmentPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skill_adjustment_passes_total",
		Help:      "Adjustment passes over completed matches, by outcome.",
	}, []string{"outcome"})
)

// Handler exposes the default registry on a gin route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
