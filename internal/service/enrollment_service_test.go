package service_test

import (
	"testing"

	"elearn_backend/internal/repository"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnrollmentService(db *gorm.DB) *service.EnrollmentService {
	return service.NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
	)
}

func TestEnrollmentService_Enroll(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"Module A", "Module B"})

	enrollment, err := enrollments.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, enrollment.UserID)
	require.Equal(t, course.ID, enrollment.CourseID)
	require.False(t, enrollment.EnrolledAt.IsZero())

	enrolled, err := enrollments.IsEnrolled(user.ID, course.ID)
	require.NoError(t, err)
	require.True(t, enrolled)
}

func TestEnrollmentService_Enroll_UnknownCourse(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	user := createTestUser(t, db, "student@example.com")

	_, err := enrollments.Enroll(user.ID, "no-such-course")
	require.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestEnrollmentService_Enroll_Duplicate(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"Module A"})

	_, err := enrollments.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = enrollments.Enroll(user.ID, course.ID)
	require.ErrorIs(t, err, util.ErrAlreadyEnrolled)
}

func TestEnrollmentService_IsEnrolled_False(t *testing.T) {
	db := newTestDB(t)
	enrollments := newEnrollmentService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"Module A"})

	enrolled, err := enrollments.IsEnrolled(user.ID, course.ID)
	require.NoError(t, err)
	require.False(t, enrolled)
}
