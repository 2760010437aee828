package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"elearn_backend/internal/config"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// newTestDB opens a throwaway sqlite database with the same migration set
// and error translation as production, so unique-index violations surface
// as gorm.ErrDuplicatedKey exactly like they do against MySQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.ExpireTime = 24 * time.Hour
	return cfg
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		FullName: "Test User",
		Email:    email,
		Password: "x",
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, syllabus []string) *model.Course {
	t.Helper()

	course := &model.Course{
		Title:       "Test Course",
		Description: "A course used in tests",
		Instructor:  "Test Instructor",
		Duration:    "4 weeks",
		Syllabus:    syllabus,
		Objectives:  []string{"learn things"},
	}
	require.NoError(t, repository.NewCourseRepository(db).Create(course))
	return course
}
