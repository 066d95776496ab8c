package services

import (
	"testing"

	"fairway-api/packages/core/models"
	"fairway-api/packages/core/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	profiles *ProfileService
	groups   *GroupService
	courses  *CourseService
	teams    *TeamService
	matches  *MatchService
	skill    *SkillIndexService
	history  *SkillHistoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	skill := NewSkillIndexService(db)
	return &testEnv{
		db:       db,
		profiles: NewProfileService(db),
		groups:   NewGroupService(db),
		courses:  NewCourseService(db),
		teams:    NewTeamService(db),
		matches:  NewMatchService(db, skill),
		skill:    skill,
		history:  NewSkillHistoryService(db),
	}
}

// member creates a profile and adds it to the group with the given index.
func (e *testEnv) member(t *testing.T, groupID uint, username string, index float64) uuid.UUID {
	t.Helper()

	profile := testutil.CreateTestProfile(t, e.db, username, testutil.Float(index))
	testutil.AddTestMember(t, e.db, groupID, profile.ID, testutil.Float(index))
	return profile.ID
}

func (e *testEnv) newMatch(t *testing.T, groupID, courseID uint, format string, holes int) *models.Match {
	t.Helper()

	match, err := e.matches.CreateMatch(models.CreateMatchRequest{
		GroupID:     groupID,
		CourseID:    courseID,
		Format:      format,
		HolesPlayed: holes,
	})
	require.NoError(t, err)
	return match
}

func (e *testEnv) memberIndex(t *testing.T, groupID uint, profileID uuid.UUID) float64 {
	t.Helper()

	member, err := e.groups.GetMember(groupID, profileID)
	require.NoError(t, err)
	require.True(t, member.SkillIndex.Valid)
	return member.SkillIndex.Float64
}

func teamsOf(ids ...[]uuid.UUID) []models.TeamAssignment {
	teams := make([]models.TeamAssignment, len(ids))
	for i, side := range ids {
		for _, id := range side {
			teams[i].ProfileIDs = append(teams[i].ProfileIDs, id.String())
		}
	}
	return teams
}

func scores(gross ...int) []models.TeamScore {
	out := make([]models.TeamScore, len(gross))
	for i, g := range gross {
		out[i] = models.TeamScore{TeamNumber: i + 1, GrossScore: testutil.Int(g)}
	}
	return out
}
