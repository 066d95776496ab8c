package services

import (
	"testing"
	"time"

	"fairway-api/packages/core/models"
	"fairway-api/packages/core/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	env := newTestEnv(t)
	stats := NewStatsService(env.db)

	group := testutil.CreateTestGroup(t, env.db, "Club")
	course := testutil.CreateTestCourse(t, env.db, 72, 72.0, 113)
	a := env.member(t, group.ID, "a", 10.0)
	b := env.member(t, group.ID, "b", 20.0)

	played := env.newMatch(t, group.ID, course.ID, "stroke_play", 18)
	_, err := env.teams.AssignTeams(played.ID, models.AssignTeamsRequest{Teams: teamsOf([]uuid.UUID{a}, []uuid.UUID{b})})
	require.NoError(t, err)
	_, _, err = env.matches.SubmitScores(played.ID, models.SubmitScoresRequest{Scores: scores(82, 100)})
	require.NoError(t, err)

	old := env.newMatch(t, group.ID, course.ID, "stroke_play", 18)
	require.NoError(t, env.db.Model(&models.Match{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -10)).Error)

	got, err := stats.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalProfiles)
	assert.Equal(t, int64(1), got.TotalGroups)
	assert.Equal(t, int64(2), got.TotalMatches)
	assert.Equal(t, int64(1), got.CompletedMatches)
	assert.Equal(t, int64(1), got.MatchesLast7Days)
	assert.Equal(t, int64(1), got.MatchesPrevious7Days)
}

func TestSkillHistoryService_GetRecentChanges(t *testing.T) {
	env := newTestEnv(t)
	group := testutil.CreateTestGroup(t, env.db, "Club")
	course := testutil.CreateTestCourse(t, env.db, 72, 72.0, 113)
	a := env.member(t, group.ID, "a", 10.0)
	b := env.member(t, group.ID, "b", 20.0)

	match := env.newMatch(t, group.ID, course.ID, "stroke_play", 18)
	_, err := env.teams.AssignTeams(match.ID, models.AssignTeamsRequest{Teams: teamsOf([]uuid.UUID{a}, []uuid.UUID{b})})
	require.NoError(t, err)
	_, _, err = env.matches.SubmitScores(match.ID, models.SubmitScoresRequest{Scores: scores(82, 100)})
	require.NoError(t, err)

	recent, err := env.history.GetRecentChanges(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, b, recent[0].ProfileID)
	assert.Equal(t, "b", recent[0].Profile.Username)
}
