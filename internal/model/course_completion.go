package model

import "time"

// CourseCompletion is the coarse whole-course ledger behind the catalog's
// completion badges. It is independent bookkeeping: it is not derived from
// module completions and the two ledgers are never reconciled.
// swagger:model CourseCompletion
type CourseCompletion struct {
	BaseModel
	UserID      uint      `gorm:"index:idx_user_course_done,unique" json:"userId"`
	CourseID    string    `gorm:"index:idx_user_course_done,unique;type:varchar(36)" json:"courseId"`
	CompletedAt time.Time `json:"completedAt"`
}

func (CourseCompletion) TableName() string {
	return "completions"
}
