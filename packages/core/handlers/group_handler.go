package handlers

import (
	"net/http"

	"fairway-api/packages/core/models"
	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService   *services.GroupService
	historyService *services.SkillHistoryService
}

func NewGroupHandler(groupService *services.GroupService, historyService *services.SkillHistoryService) *GroupHandler {
	return &GroupHandler{
		groupService:   groupService,
		historyService: historyService,
	}
}

// CreateGroup creates a group
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body models.CreateGroupRequest true "Group data"
// @Success 201 {object} models.Group
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	group, err := h.groupService.CreateGroup(req)
	if err != nil {
		respondError(c, err, "Failed to create group")
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetAllGroups lists groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Success 200 {object} models.PaginatedGroupsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /groups [get]
func (h *GroupHandler) GetAllGroups(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.groupService.GetAllGroups(page, perPage)
	if err != nil {
		respondError(c, err, "Failed to retrieve groups")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGroup retrieves a group
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.Group
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	group, err := h.groupService.GetGroupByID(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve group")
		return
	}

	c.JSON(http.StatusOK, group)
}

// JoinGroup adds a profile to a group
// @Summary Join a group
// @Description Add a profile to a group. The group skill index is seeded from the profile index, or 20 when it has none.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param member body models.JoinGroupRequest true "Profile to add"
// @Success 201 {object} models.GroupMember
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /groups/{id}/members [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	groupID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req models.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profileID, err := services.ParseProfileID(req.ProfileID)
	if err != nil {
		respondError(c, err, "Failed to join group")
		return
	}

	member, err := h.groupService.JoinGroup(groupID, profileID)
	if err != nil {
		respondError(c, err, "Failed to join group")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMembers lists group members
// @Summary List group members
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} models.GroupMember
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{id}/members [get]
func (h *GroupHandler) GetMembers(c *gin.Context) {
	groupID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	members, err := h.groupService.GetMembers(groupID)
	if err != nil {
		respondError(c, err, "Failed to retrieve members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMemberSkillHistory lists a member's skill index changes
// @Summary Get a member's skill index history
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Param profileId path string true "Profile ID (uuid)"
// @Success 200 {array} models.SkillIndexHistory
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /groups/{id}/members/{profileId}/skill-history [get]
func (h *GroupHandler) GetMemberSkillHistory(c *gin.Context) {
	groupID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	profileID, err := services.ParseProfileID(c.Param("profileId"))
	if err != nil {
		respondError(c, err, "Failed to retrieve skill history")
		return
	}

	if _, err := h.groupService.GetMember(groupID, profileID); err != nil {
		respondError(c, err, "Failed to retrieve skill history")
		return
	}

	history, err := h.historyService.GetMemberHistory(groupID, profileID)
	if err != nil {
		respondError(c, err, "Failed to retrieve skill history")
		return
	}

	c.JSON(http.StatusOK, history)
}
