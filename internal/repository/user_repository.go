package repository

import (
	"elearn_backend/internal/model"
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up under case-insensitive comparison. Emails are
// stored lower-cased, so lowering the input is sufficient.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

func (r *UserRepository) UpdateAvatar(userID uint, avatarURL string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("avatar", avatarURL).
		Error
}

// AddPoints applies a single atomic increment at the store level so
// concurrent awards for the same user never lose updates.
func (r *UserRepository) AddPoints(userID uint, points int) error {
	result := r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", points))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
