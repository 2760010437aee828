package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleCompletionRepository struct {
	DB *gorm.DB
}

func NewModuleCompletionRepository(db *gorm.DB) *ModuleCompletionRepository {
	return &ModuleCompletionRepository{DB: db}
}

func (r *ModuleCompletionRepository) Exists(userID uint, courseID string, moduleIndex int) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ModuleCompletion{}).
		Where("user_id = ? AND course_id = ? AND module_index = ?", userID, courseID, moduleIndex).
		Count(&count).Error
	return count > 0, err
}

func (r *ModuleCompletionRepository) CountByUserAndCourse(userID uint, courseID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ModuleCompletion{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count, err
}

func (r *ModuleCompletionRepository) FindByUserAndCourse(userID uint, courseID string) ([]model.ModuleCompletion, error) {
	var completions []model.ModuleCompletion
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("module_index ASC").
		Find(&completions).Error
	return completions, err
}
