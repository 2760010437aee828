package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CompletionStatus reports whether a user has marked a whole course as
// completed in the coarse ledger.
type CompletionStatus struct {
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// CompletionService owns the whole-course completion ledger. It performs no
// cross-checks against module-level completions; the two ledgers are
// independent and may disagree.
type CompletionService struct {
	CompletionRepo *repository.CourseCompletionRepository
	CourseRepo     *repository.CourseRepository
}

func NewCompletionService(completionRepo *repository.CourseCompletionRepository, courseRepo *repository.CourseRepository) *CompletionService {
	return &CompletionService{
		CompletionRepo: completionRepo,
		CourseRepo:     courseRepo,
	}
}

func (s *CompletionService) MarkComplete(userID uint, courseID string) (*model.CourseCompletion, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if _, err := s.CompletionRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrCourseAlreadyCompleted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	completion := &model.CourseCompletion{
		UserID:      userID,
		CourseID:    courseID,
		CompletedAt: time.Now(),
	}
	if err := s.CompletionRepo.Create(completion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrCourseAlreadyCompleted
		}
		return nil, err
	}
	return completion, nil
}

func (s *CompletionService) GetStatus(userID uint, courseID string) (*CompletionStatus, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	completion, err := s.CompletionRepo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CompletionStatus{IsCompleted: false}, nil
		}
		return nil, err
	}
	at := completion.CompletedAt
	return &CompletionStatus{IsCompleted: true, CompletedAt: &at}, nil
}

// StatusMap returns completion timestamps keyed by course id for every
// course the user has marked completed. Used for catalog badges.
func (s *CompletionService) StatusMap(userID uint) (map[string]time.Time, error) {
	completions, err := s.CompletionRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]time.Time, len(completions))
	for _, c := range completions {
		statuses[c.CourseID] = c.CompletedAt
	}
	return statuses, nil
}
