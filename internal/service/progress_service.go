package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

// PointsPerModule is awarded for each module completion.
const PointsPerModule = 10

// CourseProgress is derived from per-module completion facts; it is never
// stored.
type CourseProgress struct {
	TotalModules       int                      `json:"totalModules"`
	CompletedModules   int                      `json:"completedModules"`
	ProgressPercentage float64                  `json:"progressPercentage"`
	Completions        []model.ModuleCompletion `json:"completions"`
	IsFullyCompleted   bool                     `json:"isFullyCompleted"`
}

type ProgressService struct {
	CompletionRepo *repository.ModuleCompletionRepository
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	DB             *gorm.DB
}

func NewProgressService(completionRepo *repository.ModuleCompletionRepository, enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, db *gorm.DB) *ProgressService {
	return &ProgressService{
		CompletionRepo: completionRepo,
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		DB:             db,
	}
}

// CompleteModule records the completion of one syllabus module and awards
// points. The completion insert and the point award commit or fail together;
// a duplicate insert under race surfaces as ErrModuleAlreadyCompleted just
// like a pre-checked duplicate.
func (s *ProgressService) CompleteModule(userID uint, courseID string, moduleIndex int) (*model.ModuleCompletion, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if moduleIndex < 0 || moduleIndex >= len(course.Syllabus) {
		return nil, util.ErrInvalidModuleIndex
	}

	enrolled, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, util.ErrNotEnrolled
	}

	exists, err := s.CompletionRepo.Exists(userID, courseID, moduleIndex)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrModuleAlreadyCompleted
	}

	completion := &model.ModuleCompletion{
		UserID:      userID,
		CourseID:    courseID,
		ModuleIndex: moduleIndex,
		ModuleTitle: course.Syllabus[moduleIndex],
		CompletedAt: time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(completion).Error; err != nil {
			return err
		}

		result := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", PointsPerModule))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrModuleAlreadyCompleted
		}
		return nil, err
	}
	return completion, nil
}

// GetProgress derives the caller's progress through a course from the
// module-completion ledger. A course with an empty syllabus reports 0% and
// is never considered fully completed.
func (s *ProgressService) GetProgress(userID uint, courseID string) (*CourseProgress, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	completions, err := s.CompletionRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	total := len(course.Syllabus)
	completed := len(completions)

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	return &CourseProgress{
		TotalModules:       total,
		CompletedModules:   completed,
		ProgressPercentage: percentage,
		Completions:        completions,
		IsFullyCompleted:   total > 0 && completed == total,
	}, nil
}
