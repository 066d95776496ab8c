package models

import (
	"time"

	"fairway-api/packages/core/handicap"

	"gorm.io/gorm"
)

type Course struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Par       int            `gorm:"not null" json:"par"`
	Rating    float64        `gorm:"not null" json:"rating"`
	Slope     int            `gorm:"not null;default:113" json:"slope"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// Attributes returns the rating attributes the handicap engine works with.
func (c Course) Attributes() handicap.Course {
	return handicap.Course{Par: c.Par, Rating: c.Rating, Slope: c.Slope}
}

type CreateCourseRequest struct {
	Name   string  `json:"name" binding:"required"`
	Par    int     `json:"par" binding:"required,min=27,max=80"`
	Rating float64 `json:"rating" binding:"required,gt=0"`
	Slope  int     `json:"slope" binding:"required,min=55,max=155"`
}

type PaginatedCoursesResponse struct {
	Data       []Course `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}
