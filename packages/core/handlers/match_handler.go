package handlers

import (
	"net/http"
	"strconv"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/models"
	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
	teamService  *services.TeamService
}

func NewMatchHandler(matchService *services.MatchService, teamService *services.TeamService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		teamService:  teamService,
	}
}

// CreateMatch schedules a match
// @Summary Create a match
// @Description Create a match in a group on a course. The match starts in the pending status.
// @Tags matches
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		respondError(c, err, "Failed to create match")
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatches retrieves matches with pagination and filters
// @Summary Get matches with pagination and filters
// @Tags matches
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Param group_id query int false "Filter by group ID"
// @Param status query string false "Filter by match status" Enums(pending,teams_ready,completed)
// @Success 200 {object} models.PaginatedMatchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	var filter services.MatchFilter

	if groupIDStr := c.Query("group_id"); groupIDStr != "" {
		groupID, err := strconv.ParseUint(groupIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group_id parameter"})
			return
		}
		id := uint(groupID)
		filter.GroupID = &id
	}

	if status := c.Query("status"); status != "" {
		switch handicap.Status(status) {
		case handicap.StatusPending, handicap.StatusTeamsReady, handicap.StatusCompleted:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: pending, teams_ready, completed"})
			return
		}
		filter.Status = &status
	}

	result, err := h.matchService.GetMatches(filter, page, perPage)
	if err != nil {
		respondError(c, err, "Failed to retrieve matches")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatch retrieves a match with its teams
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatchByID(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve match")
		return
	}

	c.JSON(http.StatusOK, match)
}

// AssignTeams sets the teams of a pending match
// @Summary Assign teams
// @Description Assign group members to teams. Course handicaps, team handicaps and relative strokes are computed and frozen.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param teams body models.AssignTeamsRequest true "Teams in order; team numbers start at 1"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/teams [put]
func (h *MatchHandler) AssignTeams(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.AssignTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	match, err := h.teamService.AssignTeams(id, req)
	if err != nil {
		respondError(c, err, "Failed to assign teams")
		return
	}

	c.JSON(http.StatusOK, match)
}

// SubmitScores records gross scores and completes the match
// @Summary Submit scores
// @Description Record every team's gross score, compute net scores and winners, then adjust group skill indexes.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param scores body models.SubmitScoresRequest true "Gross score per team"
// @Success 200 {object} models.SubmitScoresResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/scores [post]
func (h *MatchHandler) SubmitScores(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.SubmitScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	match, report, err := h.matchService.SubmitScores(id, req)
	if err != nil {
		respondError(c, err, "Failed to submit scores")
		return
	}

	c.JSON(http.StatusOK, models.SubmitScoresResponse{
		Match:      match,
		Adjustment: report,
	})
}
