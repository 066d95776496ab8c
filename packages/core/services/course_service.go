package services

import (
	"errors"

	"fairway-api/packages/core/models"

	"gorm.io/gorm"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{
		db: db,
	}
}

func (s *CourseService) CreateCourse(req models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:   req.Name,
		Par:    req.Par,
		Rating: req.Rating,
		Slope:  req.Slope,
	}

	if err := s.db.Create(course).Error; err != nil {
		return nil, err
	}

	return course, nil
}

func (s *CourseService) GetCourseByID(id uint) (*models.Course, error) {
	var course models.Course

	result := s.db.First(&course, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, result.Error
	}

	return &course, nil
}

func (s *CourseService) GetAllCourses(page, pageSize int) (*models.PaginatedCoursesResponse, error) {
	var courses []models.Course
	var total int64

	if err := s.db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&courses).Error; err != nil {
		return nil, err
	}

	return &models.PaginatedCoursesResponse{
		Data:       courses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
