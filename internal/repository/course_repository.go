package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}
