package handlers

import (
	"net/http"
	"strconv"

	"fairway-api/packages/core/handicap"
	"fairway-api/packages/core/models"
	"fairway-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

// CreateCourse creates a course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.CreateCourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	course, err := h.courseService.CreateCourse(req)
	if err != nil {
		respondError(c, err, "Failed to create course")
		return
	}

	c.JSON(http.StatusCreated, course)
}

// GetAllCourses lists courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number (default: 1)" default(1)
// @Param per_page query int false "Items per page (default: 10, max: 100)" default(10)
// @Success 200 {object} models.PaginatedCoursesResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	page, perPage, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.courseService.GetAllCourses(page, perPage)
	if err != nil {
		respondError(c, err, "Failed to retrieve courses")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCourse retrieves a course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetCourseByID(id)
	if err != nil {
		respondError(c, err, "Failed to retrieve course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// CourseHandicapResponse is the result of the course handicap calculator.
type CourseHandicapResponse struct {
	SkillIndex     float64 `json:"skill_index" example:"10.0"`
	Holes          int     `json:"holes" example:"18"`
	FullHandicap   float64 `json:"full_handicap" example:"11.5"`
	CourseHandicap float64 `json:"course_handicap" example:"11.5"`
}

// CalculateCourseHandicap converts a skill index for a course
// @Summary Course handicap calculator
// @Description Convert a skill index into a course handicap, scaled to the holes played
// @Tags handicaps
// @Produce json
// @Param index query number true "Skill index"
// @Param slope query int false "Slope rating (default: 113)"
// @Param rating query number true "Course rating"
// @Param par query int true "Par"
// @Param holes query int false "Holes played, 9 or 18 (default: 18)"
// @Success 200 {object} CourseHandicapResponse
// @Failure 400 {object} map[string]string
// @Router /handicaps/course [get]
func (h *CourseHandler) CalculateCourseHandicap(c *gin.Context) {
	index, err := strconv.ParseFloat(c.Query("index"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index parameter"})
		return
	}

	slope, err := strconv.Atoi(c.DefaultQuery("slope", strconv.Itoa(handicap.NeutralSlope)))
	if err != nil || slope <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slope parameter"})
		return
	}

	rating, err := strconv.ParseFloat(c.Query("rating"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating parameter"})
		return
	}

	par, err := strconv.Atoi(c.Query("par"))
	if err != nil || par <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid par parameter"})
		return
	}

	holes, err := strconv.Atoi(c.DefaultQuery("holes", strconv.Itoa(handicap.FullRound)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid holes parameter"})
		return
	}
	if err := handicap.ValidateHoles(holes); err != nil {
		respondError(c, err, "Failed to calculate handicap")
		return
	}

	full := handicap.CourseHandicap(index, slope, rating, par)
	c.JSON(http.StatusOK, CourseHandicapResponse{
		SkillIndex:     index,
		Holes:          holes,
		FullHandicap:   full,
		CourseHandicap: handicap.PartialHandicap(full, holes),
	})
}
