package handlers

import (
	"net/http"

	"fairway-api/packages/core/models"
	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// CreateProfile creates a player profile
// @Summary Create a profile
// @Description Create a player profile with an optional profile skill index
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body models.CreateProfileRequest true "Profile data"
// @Success 201 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.profileService.CreateProfile(req)
	if err != nil {
		respondError(c, err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetAllProfiles lists profiles
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Param order_by query string false "Sort field" Enums(created_at,username,skill_index)
// @Param direction query string false "Sort direction" Enums(ASC,DESC)
// @Success 200 {object} models.PaginatedProfilesResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profiles [get]
func (h *ProfileHandler) GetAllProfiles(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.profileService.GetAllProfiles(
		c.DefaultQuery("order_by", "created_at"),
		c.DefaultQuery("direction", "DESC"),
		page, perPage,
	)
	if err != nil {
		respondError(c, err, "Failed to retrieve profiles")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProfile retrieves a profile by id
// @Summary Get a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID (uuid)"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := services.ParseProfileID(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	profile, err := h.profileService.GetProfileByID(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile changes a profile
// @Summary Update a profile
// @Description Update username, name or profile skill index. Existing group indexes are not re-seeded.
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (uuid)"
// @Param profile body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /profiles/{id} [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := services.ParseProfileID(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.profileService.UpdateProfile(id, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
