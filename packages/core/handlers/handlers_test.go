package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fairway-api/packages/core"
	"fairway-api/packages/core/handlers"
	"fairway-api/packages/core/models"
	"fairway-api/packages/core/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	module := core.NewModule(testutil.SetupTestDB(t), core.Options{})
	r := gin.New()
	module.SetupRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeRequest(t, method, path, body))
	return w
}

func createProfile(t *testing.T, r *gin.Engine, username string, index float64) models.Profile {
	t.Helper()

	w := do(t, r, http.MethodPost, "/profiles", gin.H{"username": username, "skill_index": index})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var profile models.Profile
	testutil.DecodeJSON(t, w, &profile)
	return profile
}

func TestMatchLifecycleOverHTTP(t *testing.T) {
	r := setupRouter(t)

	low := createProfile(t, r, "low", 10.0)
	high := createProfile(t, r, "high", 20.0)

	w := do(t, r, http.MethodPost, "/groups", gin.H{"name": "Saturday Skins"})
	require.Equal(t, http.StatusCreated, w.Code)
	var group models.Group
	testutil.DecodeJSON(t, w, &group)
	assert.Equal(t, "saturday-skins", group.Slug)

	for _, p := range []models.Profile{low, high} {
		w = do(t, r, http.MethodPost, fmt.Sprintf("/groups/%d/members", group.ID), gin.H{"profile_id": p.ID.String()})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/courses", gin.H{"name": "Old Course", "par": 72, "rating": 72.0, "slope": 113})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var course models.Course
	testutil.DecodeJSON(t, w, &course)

	w = do(t, r, http.MethodPost, "/matches", gin.H{
		"group_id":     group.ID,
		"course_id":    course.ID,
		"format":       "stroke_play",
		"holes_played": 18,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var match models.Match
	testutil.DecodeJSON(t, w, &match)
	assert.Equal(t, "pending", match.Status)

	teamsPath := fmt.Sprintf("/matches/%d/teams", match.ID)
	teams := gin.H{"teams": []gin.H{
		{"profile_ids": []string{low.ID.String()}},
		{"profile_ids": []string{high.ID.String()}},
	}}
	w = do(t, r, http.MethodPut, teamsPath, teams)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	testutil.DecodeJSON(t, w, &match)
	assert.Equal(t, "teams_ready", match.Status)
	require.Len(t, match.Teams, 2)
	assert.Equal(t, 10, match.Teams[1].HandicapStrokes)

	w = do(t, r, http.MethodPut, teamsPath, teams)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, fmt.Sprintf("/matches/%d/scores", match.ID), gin.H{"scores": []gin.H{
		{"team_number": 1, "gross_score": 82},
		{"team_number": 2, "gross_score": 100},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result models.SubmitScoresResponse
	testutil.DecodeJSON(t, w, &result)
	assert.Equal(t, "completed", result.Match.Status)
	assert.True(t, result.Match.Teams[0].IsWinner)
	require.NotNil(t, result.Adjustment)
	assert.Equal(t, models.AdjustmentApplied, result.Adjustment.Status)
	require.Len(t, result.Adjustment.Adjusted, 2)
	assert.Equal(t, 8.7, result.Adjustment.Adjusted[0].IndexAfter)
	assert.Equal(t, 21.3, result.Adjustment.Adjusted[1].IndexAfter)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/groups/%d/members/%s/skill-history", group.ID, low.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var history []models.SkillIndexHistory
	testutil.DecodeJSON(t, w, &history)
	require.Len(t, history, 1)
	assert.Equal(t, 8.7, history[0].IndexAfter)

	w = do(t, r, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.Stats
	testutil.DecodeJSON(t, w, &stats)
	assert.Equal(t, int64(1), stats.CompletedMatches)
}

func TestErrorResponses(t *testing.T) {
	r := setupRouter(t)
	profile := createProfile(t, r, "ada", 12.0)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{name: "unknown match", method: http.MethodGet, path: "/matches/42", want: http.StatusNotFound},
		{name: "bad match id", method: http.MethodGet, path: "/matches/abc", want: http.StatusBadRequest},
		{name: "bad profile id", method: http.MethodGet, path: "/profiles/abc", want: http.StatusBadRequest},
		{name: "duplicate username", method: http.MethodPost, path: "/profiles", body: gin.H{"username": "ada"}, want: http.StatusConflict},
		{name: "skill index out of range", method: http.MethodPost, path: "/profiles", body: gin.H{"username": "bob", "skill_index": 80}, want: http.StatusBadRequest},
		{name: "unknown group", method: http.MethodPost, path: "/groups/7/members", body: gin.H{"profile_id": profile.ID.String()}, want: http.StatusNotFound},
		{name: "invalid format", method: http.MethodPost, path: "/matches", body: gin.H{"group_id": 1, "course_id": 1, "format": "skins", "holes_played": 18}, want: http.StatusBadRequest},
		{name: "invalid holes", method: http.MethodPost, path: "/matches", body: gin.H{"group_id": 1, "course_id": 1, "format": "stroke_play", "holes_played": 12}, want: http.StatusBadRequest},
		{name: "missing scores", method: http.MethodPost, path: "/matches/1/scores", body: gin.H{}, want: http.StatusBadRequest},
		{name: "bad status filter", method: http.MethodGet, path: "/matches?status=done", want: http.StatusBadRequest},
		{name: "bad page", method: http.MethodGet, path: "/groups?page=0", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())

			var body map[string]string
			testutil.DecodeJSON(t, w, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCalculateCourseHandicap(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name  string
		query string
		want  int
		full  float64
		hcp   float64
	}{
		{name: "neutral course", query: "index=10&rating=72&par=72", want: http.StatusOK, full: 10.0, hcp: 10.0},
		{name: "sloped course", query: "index=10&slope=130&rating=73.5&par=72", want: http.StatusOK, full: 13.0, hcp: 13.0},
		{name: "nine holes", query: "index=15&rating=72&par=72&holes=9", want: http.StatusOK, full: 15.0, hcp: 7.5},
		{name: "missing index", query: "rating=72&par=72", want: http.StatusBadRequest},
		{name: "bad holes", query: "index=10&rating=72&par=72&holes=12", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/handicaps/course?"+tt.query, nil)
			require.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.want != http.StatusOK {
				return
			}

			var resp handlers.CourseHandicapResponse
			testutil.DecodeJSON(t, w, &resp)
			assert.Equal(t, tt.full, resp.FullHandicap)
			assert.Equal(t, tt.hcp, resp.CourseHandicap)
		})
	}
}
