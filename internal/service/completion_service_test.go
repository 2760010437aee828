package service_test

import (
	"testing"

	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCompletionService(db *gorm.DB) *service.CompletionService {
	return service.NewCompletionService(
		repository.NewCourseCompletionRepository(db),
		repository.NewCourseRepository(db),
	)
}

func TestCompletionService_MarkComplete(t *testing.T) {
	db := newTestDB(t)
	completions := newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"One", "Two"})

	// Marking a whole course complete needs no module completions and no
	// enrollment: this ledger is independent bookkeeping.
	completion, err := completions.MarkComplete(user.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, course.ID, completion.CourseID)
	require.False(t, completion.CompletedAt.IsZero())
}

func TestCompletionService_MarkComplete_UnknownCourse(t *testing.T) {
	db := newTestDB(t)
	completions := newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")

	_, err := completions.MarkComplete(user.ID, "no-such-course")
	require.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCompletionService_MarkComplete_Duplicate(t *testing.T) {
	db := newTestDB(t)
	completions := newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"One"})

	_, err := completions.MarkComplete(user.ID, course.ID)
	require.NoError(t, err)

	_, err = completions.MarkComplete(user.ID, course.ID)
	require.ErrorIs(t, err, util.ErrCourseAlreadyCompleted)
}

func TestCompletionService_MarkComplete_RaceSurfacesAsConflict(t *testing.T) {
	db := newTestDB(t)
	_ = newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"One"})

	// Row inserted between pre-check and insert: the unique index is the
	// authoritative guard.
	require.NoError(t, db.Create(&model.CourseCompletion{
		UserID:   user.ID,
		CourseID: course.ID,
	}).Error)

	repo := repository.NewCourseCompletionRepository(db)
	err := repo.Create(&model.CourseCompletion{UserID: user.ID, CourseID: course.ID})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCompletionService_GetStatus(t *testing.T) {
	db := newTestDB(t)
	completions := newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")
	course := createTestCourse(t, db, []string{"One"})

	status, err := completions.GetStatus(user.ID, course.ID)
	require.NoError(t, err)
	require.False(t, status.IsCompleted)
	require.Nil(t, status.CompletedAt)

	_, err = completions.MarkComplete(user.ID, course.ID)
	require.NoError(t, err)

	status, err = completions.GetStatus(user.ID, course.ID)
	require.NoError(t, err)
	require.True(t, status.IsCompleted)
	require.NotNil(t, status.CompletedAt)
}

func TestCompletionService_GetStatus_UnknownCourse(t *testing.T) {
	db := newTestDB(t)
	completions := newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")

	_, err := completions.GetStatus(user.ID, "no-such-course")
	require.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCompletionService_StatusMap(t *testing.T) {
	db := newTestDB(t)
	completions := newCompletionService(db)
	user := createTestUser(t, db, "student@example.com")
	courseA := createTestCourse(t, db, []string{"One"})
	courseB := createTestCourse(t, db, []string{"One", "Two"})
	courseC := createTestCourse(t, db, []string{"One"})

	_, err := completions.MarkComplete(user.ID, courseA.ID)
	require.NoError(t, err)
	_, err = completions.MarkComplete(user.ID, courseC.ID)
	require.NoError(t, err)

	statuses, err := completions.StatusMap(user.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	require.Contains(t, statuses, courseA.ID)
	require.Contains(t, statuses, courseC.ID)
	require.NotContains(t, statuses, courseB.ID)
}
