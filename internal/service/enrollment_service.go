package service

import (
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// Enroll records the (user, course) pair once. A duplicate attempt surfaces
// as ErrAlreadyEnrolled whether caught by the pre-check or by the unique
// index under a concurrent race.
func (s *EnrollmentService) Enroll(userID uint, courseID string) (*model.Enrollment, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	exists, err := s.EnrollmentRepo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) IsEnrolled(userID uint, courseID string) (bool, error) {
	return s.EnrollmentRepo.Exists(userID, courseID)
}
