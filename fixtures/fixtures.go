package fixtures

import (
	"fmt"
	"math"
	"time"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/models"
	"fairway-api/packages/core/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	nbProfiles = 16
	nbGroups   = 2
	nbCourses  = 3
	nbMatches  = 40
)

var formats = []handicap.Format{
	handicap.FormatStrokePlay,
	handicap.FormatMatchPlay,
	handicap.FormatScramble,
	handicap.FormatBestBall,
	handicap.FormatShamble,
}

type Fixtures struct {
	db    *gorm.DB
	faker *gofakeit.Faker

	profiles *services.ProfileService
	groups   *services.GroupService
	courses  *services.CourseService
	teams    *services.TeamService
	matches  *services.MatchService
}

// NewFixtures builds a generator. A zero seed uses the current time.
func NewFixtures(db *gorm.DB, seed int64) *Fixtures {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	skill := services.NewSkillIndexService(db)
	return &Fixtures{
		db:       db,
		faker:    gofakeit.New(uint64(seed)), // #nosec G115
		profiles: services.NewProfileService(db),
		groups:   services.NewGroupService(db),
		courses:  services.NewCourseService(db),
		teams:    services.NewTeamService(db),
		matches:  services.NewMatchService(db, skill),
	}
}

// GenerateTestData creates profiles, groups, courses and a history of played
// matches. Matches go through the same services as the API so skill indexes
// and history rows are produced by the real adjustment pass.
func (f *Fixtures) GenerateTestData() error {
	logrus.Info("Starting fixtures generation...")

	profiles, err := f.generateProfiles()
	if err != nil {
		return fmt.Errorf("failed to generate profiles: %w", err)
	}

	groups, err := f.generateGroups(profiles)
	if err != nil {
		return fmt.Errorf("failed to generate groups: %w", err)
	}

	courses, err := f.generateCourses()
	if err != nil {
		return fmt.Errorf("failed to generate courses: %w", err)
	}

	played, err := f.generateMatches(groups, courses)
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"profiles": len(profiles),
		"groups":   len(groups),
		"courses":  len(courses),
		"matches":  played,
	}).Info("Fixtures generated successfully!")
	return nil
}

func (f *Fixtures) generateProfiles() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, nbProfiles)

	for i := 0; i < nbProfiles; i++ {
		req := models.CreateProfileRequest{
			Username: fmt.Sprintf("%s%d", f.faker.Username(), i+1),
			FullName: f.faker.Name(),
		}
		// Roughly one player in four has no official index yet.
		if f.faker.Number(1, 4) > 1 {
			index := handicap.Round1(f.faker.Float64Range(0, 36))
			req.SkillIndex = &index
		}

		profile, err := f.profiles.CreateProfile(req)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	return profiles, nil
}

// generateGroups splits the profiles over the groups. A few players belong to
// every group, so their indexes evolve independently per group.
func (f *Fixtures) generateGroups(profiles []models.Profile) ([]models.Group, error) {
	groups := make([]models.Group, 0, nbGroups)

	for g := 0; g < nbGroups; g++ {
		group, err := f.groups.CreateGroup(models.CreateGroupRequest{
			Name:        fmt.Sprintf("%s Golf Society", f.faker.Company()),
			Description: fmt.Sprintf("Weekly games out of %s", f.faker.City()),
		})
		if err != nil {
			return nil, err
		}

		for i, profile := range profiles {
			if i%nbGroups != g && i >= 4 {
				continue
			}
			if _, err := f.groups.JoinGroup(group.ID, profile.ID); err != nil {
				return nil, err
			}
		}
		groups = append(groups, *group)
	}

	return groups, nil
}

func (f *Fixtures) generateCourses() ([]models.Course, error) {
	courses := make([]models.Course, 0, nbCourses)

	for i := 0; i < nbCourses; i++ {
		par := f.faker.Number(70, 72)
		course, err := f.courses.CreateCourse(models.CreateCourseRequest{
			Name:   fmt.Sprintf("%s Golf Club", f.faker.City()),
			Par:    par,
			Rating: handicap.Round1(float64(par) + f.faker.Float64Range(-2.5, 3.5)),
			Slope:  f.faker.Number(105, 145),
		})
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}

	return courses, nil
}

// generateMatches plays matches one after the other. The last few are left
// unfinished so every lifecycle status shows up in the data.
func (f *Fixtures) generateMatches(groups []models.Group, courses []models.Course) (int, error) {
	members := make(map[uint][]uuid.UUID, len(groups))
	for _, group := range groups {
		list, err := f.groups.GetMembers(group.ID)
		if err != nil {
			return 0, err
		}
		for _, m := range list {
			members[group.ID] = append(members[group.ID], m.ProfileID)
		}
	}

	completed := 0
	for i := 0; i < nbMatches; i++ {
		group := groups[f.faker.Number(0, len(groups)-1)]
		course := courses[f.faker.Number(0, len(courses)-1)]
		format := formats[f.faker.Number(0, len(formats)-1)]
		holes := handicap.FullRound
		if f.faker.Number(1, 5) == 1 {
			holes = 9
		}

		scheduled := time.Now().AddDate(0, 0, i-nbMatches)
		match, err := f.matches.CreateMatch(models.CreateMatchRequest{
			GroupID:     group.ID,
			CourseID:    course.ID,
			Format:      string(format),
			HolesPlayed: holes,
			ScheduledAt: &scheduled,
		})
		if err != nil {
			return completed, err
		}
		if i >= nbMatches-2 {
			continue
		}

		match, err = f.teams.AssignTeams(match.ID, models.AssignTeamsRequest{
			Teams: f.pickSides(format, members[group.ID]),
		})
		if err != nil {
			return completed, err
		}
		if i == nbMatches-3 {
			continue
		}

		if _, _, err := f.matches.SubmitScores(match.ID, models.SubmitScoresRequest{
			Scores: f.grossScores(match, course, holes),
		}); err != nil {
			return completed, err
		}
		completed++
	}

	return completed, nil
}

func (f *Fixtures) pickSides(format handicap.Format, pool []uuid.UUID) []models.TeamAssignment {
	nbSides, perSide := 2, 1
	switch format {
	case handicap.FormatStrokePlay:
		nbSides = f.faker.Number(2, 4)
	case handicap.FormatScramble, handicap.FormatBestBall, handicap.FormatShamble:
		perSide = 2
	}

	shuffled := append([]uuid.UUID(nil), pool...)
	f.faker.ShuffleAnySlice(shuffled)

	sides := make([]models.TeamAssignment, nbSides)
	for s := range sides {
		for p := 0; p < perSide; p++ {
			sides[s].ProfileIDs = append(sides[s].ProfileIDs, shuffled[s*perSide+p].String())
		}
	}
	return sides
}

// grossScores draws a plausible score per side around par plus the side's
// handicap.
func (f *Fixtures) grossScores(match *models.Match, course models.Course, holes int) []models.TeamScore {
	base := float64(course.Par) * float64(holes) / handicap.FullRound

	scores := make([]models.TeamScore, 0, len(match.Teams))
	for _, team := range match.Teams {
		gross := int(math.Round(base+team.Handicap)) + f.faker.Number(-4, 6)
		if gross < holes {
			gross = holes
		}
		scores = append(scores, models.TeamScore{TeamNumber: team.TeamNumber, GrossScore: &gross})
	}
	return scores
}

// ClearAllData removes all fixture data
func (f *Fixtures) ClearAllData() error {
	logrus.Info("Clearing all fixture data...")

	// Delete in correct order due to foreign key constraints
	tables := []interface{}{
		&models.SkillIndexHistory{},
		&models.TeamPlayer{},
		&models.Team{},
		&models.Match{},
		&models.GroupMember{},
		&models.Course{},
		&models.Group{},
		&models.Profile{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	sequences := []string{
		"skill_index_history_id_seq",
		"team_players_id_seq",
		"teams_id_seq",
		"matches_id_seq",
		"group_members_id_seq",
		"courses_id_seq",
		"groups_id_seq",
	}
	for _, seq := range sequences {
		if err := f.db.Exec(fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq)).Error; err != nil {
			logrus.WithError(err).WithField("sequence", seq).Warn("could not reset sequence")
		}
	}

	logrus.Info("All fixture data cleared!")
	return nil
}
