package handlers

import (
	"net/http"
	"strconv"

	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type SkillHistoryHandler struct {
	historyService *services.SkillHistoryService
}

func NewSkillHistoryHandler(historyService *services.SkillHistoryService) *SkillHistoryHandler {
	return &SkillHistoryHandler{
		historyService: historyService,
	}
}

// GetRecentChanges retrieves the N most recent skill index changes
// @Summary Get recent skill index changes
// @Description Get the N most recent skill index changes across all groups (newest first)
// @Tags skill-history
// @Produce json
// @Param limit query int false "Number of entries to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.SkillIndexHistory
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /skill-history/recent [get]
func (h *SkillHistoryHandler) GetRecentChanges(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid limit parameter",
		})
		return
	}

	if limit > 100 {
		limit = 100
	}

	history, err := h.historyService.GetRecentChanges(limit)
	if err != nil {
		respondError(c, err, "Failed to retrieve skill index history")
		return
	}

	c.JSON(http.StatusOK, history)
}
