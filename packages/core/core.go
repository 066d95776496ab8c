package core

import (
	"time"

	"fairway-api/packages/core/cron"
	"fairway-api/packages/core/handlers"
	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Options tune the background work of the module.
type Options struct {
	SweepSchedule    string
	SweepGracePeriod time.Duration
}

type Module struct {
	ProfileHandler         *handlers.ProfileHandler
	ProfileService         *services.ProfileService
	GroupHandler           *handlers.GroupHandler
	GroupService           *services.GroupService
	CourseHandler          *handlers.CourseHandler
	CourseService          *services.CourseService
	MatchHandler           *handlers.MatchHandler
	MatchService           *services.MatchService
	TeamService            *services.TeamService
	SkillIndexService      *services.SkillIndexService
	SkillHistoryHandler    *handlers.SkillHistoryHandler
	SkillHistoryService    *services.SkillHistoryService
	StatsHandler           *handlers.StatsHandler
	StatsService           *services.StatsService
	AdjustmentSweepService *services.AdjustmentSweepService
	Scheduler              *cron.Scheduler
}

func NewModule(db *gorm.DB, opts Options) *Module {
	if opts.SweepGracePeriod <= 0 {
		opts.SweepGracePeriod = services.DefaultSweepGracePeriod
	}

	profileService := services.NewProfileService(db)
	profileHandler := handlers.NewProfileHandler(profileService)

	skillHistoryService := services.NewSkillHistoryService(db)
	skillHistoryHandler := handlers.NewSkillHistoryHandler(skillHistoryService)

	groupService := services.NewGroupService(db)
	groupHandler := handlers.NewGroupHandler(groupService, skillHistoryService)

	courseService := services.NewCourseService(db)
	courseHandler := handlers.NewCourseHandler(courseService)

	skillIndexService := services.NewSkillIndexService(db)
	teamService := services.NewTeamService(db)
	matchService := services.NewMatchService(db, skillIndexService)
	matchHandler := handlers.NewMatchHandler(matchService, teamService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	sweepService := services.NewAdjustmentSweepService(db, skillIndexService, opts.SweepGracePeriod)
	scheduler := cron.NewScheduler(sweepService, opts.SweepSchedule)

	return &Module{
		ProfileHandler:         profileHandler,
		ProfileService:         profileService,
		GroupHandler:           groupHandler,
		GroupService:           groupService,
		CourseHandler:          courseHandler,
		CourseService:          courseService,
		MatchHandler:           matchHandler,
		MatchService:           matchService,
		TeamService:            teamService,
		SkillIndexService:      skillIndexService,
		SkillHistoryHandler:    skillHistoryHandler,
		SkillHistoryService:    skillHistoryService,
		StatsHandler:           statsHandler,
		StatsService:           statsService,
		AdjustmentSweepService: sweepService,
		Scheduler:              scheduler,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	profiles := r.Group("/profiles")
	{
		profiles.GET("", m.ProfileHandler.GetAllProfiles)
		profiles.POST("", m.ProfileHandler.CreateProfile)
		profiles.GET("/:id", m.ProfileHandler.GetProfile)
		profiles.PATCH("/:id", m.ProfileHandler.UpdateProfile)
	}

	groups := r.Group("/groups")
	{
		groups.GET("", m.GroupHandler.GetAllGroups)
		groups.POST("", m.GroupHandler.CreateGroup)
		groups.GET("/:id", m.GroupHandler.GetGroup)
		groups.GET("/:id/members", m.GroupHandler.GetMembers)
		groups.POST("/:id/members", m.GroupHandler.JoinGroup)
		groups.GET("/:id/members/:profileId/skill-history", m.GroupHandler.GetMemberSkillHistory)
	}

	courses := r.Group("/courses")
	{
		courses.GET("", m.CourseHandler.GetAllCourses)
		courses.POST("", m.CourseHandler.CreateCourse)
		courses.GET("/:id", m.CourseHandler.GetCourse)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.POST("", m.MatchHandler.CreateMatch)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.PUT("/:id/teams", m.MatchHandler.AssignTeams)
		matches.POST("/:id/scores", m.MatchHandler.SubmitScores)
	}

	r.GET("/handicaps/course", m.CourseHandler.CalculateCourseHandicap)
	r.GET("/skill-history/recent", m.SkillHistoryHandler.GetRecentChanges)
	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the adjustment sweep.
func (m *Module) StartScheduler() error {
	logrus.Info("starting core module scheduler")
	return m.Scheduler.Start()
}

func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}

// RunAdjustmentSweepNow runs the sweep once, outside the schedule.
func (m *Module) RunAdjustmentSweepNow() {
	m.Scheduler.RunNow()
}
