package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type CourseCompletionRepository struct {
	DB *gorm.DB
}

func NewCourseCompletionRepository(db *gorm.DB) *CourseCompletionRepository {
	return &CourseCompletionRepository{DB: db}
}

func (r *CourseCompletionRepository) Create(completion *model.CourseCompletion) error {
	return r.DB.Create(completion).Error
}

func (r *CourseCompletionRepository) FindByUserAndCourse(userID uint, courseID string) (*model.CourseCompletion, error) {
	var completion model.CourseCompletion
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&completion).Error
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

func (r *CourseCompletionRepository) FindAllByUser(userID uint) ([]model.CourseCompletion, error) {
	var completions []model.CourseCompletion
	err := r.DB.Where("user_id = ?", userID).Find(&completions).Error
	return completions, err
}
