package database

import (
	"elearn_backend/internal/config"
	"elearn_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError maps driver duplicate-key failures to
	// gorm.ErrDuplicatedKey; the unique indexes below are the authoritative
	// guards for the enrollment/completion ledgers.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedCourses(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the five collections and their uniqueness indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.CourseCompletion{},
		&model.ModuleCompletion{},
	)
}
