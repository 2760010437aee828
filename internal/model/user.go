package model

import (
	"time"
)

// User stores identity and credentials. Email is persisted lower-cased and
// is unique under case-insensitive comparison.
// swagger:model User
type User struct {
	BaseModel
	FullName  string    `gorm:"size:100;not null" json:"fullName"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Points    int       `gorm:"default:0" json:"points"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	LastLogin time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
