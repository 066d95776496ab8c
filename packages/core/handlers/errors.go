package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var notFoundErrors = []error{
	services.ErrProfileNotFound,
	services.ErrGroupNotFound,
	services.ErrMemberNotFound,
	services.ErrCourseNotFound,
	services.ErrMatchNotFound,
}

var conflictErrors = []error{
	services.ErrUsernameTaken,
	services.ErrAlreadyMember,
	services.ErrInvalidStatus,
}

var validationErrors = []error{
	services.ErrInvalidProfileID,
	services.ErrNotGroupMember,
	services.ErrDuplicatePlayer,
	services.ErrMissingScore,
	services.ErrDuplicateScore,
	services.ErrUnknownTeam,
	handicap.ErrInvalidFormat,
	handicap.ErrInvalidHoles,
	handicap.ErrInvalidTeamShape,
	handicap.ErrInvalidOverride,
	handicap.ErrInvalidGrossScore,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps service errors to a status code. Unknown errors are logged
// and answered with fallback so internal details never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case matchesAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case matchesAny(err, conflictErrors):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case matchesAny(err, validationErrors):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error(fallback)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads page and per_page, capping per_page at 100.
func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return 0, 0, false
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page parameter"})
		return 0, 0, false
	}
	if perPage > 100 {
		perPage = 100
	}

	return page, perPage, true
}
