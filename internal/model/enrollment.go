package model

import "time"

// Enrollment records at most one enrollment per (user, course). The unique
// index is the authoritative guard against duplicates under concurrent
// requests; application pre-checks are an optimization only.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_user_course,unique" json:"userId"`
	CourseID   string    `gorm:"index:idx_user_course,unique;type:varchar(36)" json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
