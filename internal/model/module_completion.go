package model

import "time"

// ModuleCompletion records at most one completion per (user, course, module
// index). ModuleTitle is a denormalized snapshot of the syllabus entry at
// completion time. Records are immutable once created.
// swagger:model ModuleCompletion
type ModuleCompletion struct {
	BaseModel
	UserID      uint      `gorm:"index:idx_user_course_module,unique" json:"userId"`
	CourseID    string    `gorm:"index:idx_user_course_module,unique;type:varchar(36)" json:"courseId"`
	ModuleIndex int       `gorm:"index:idx_user_course_module,unique" json:"moduleIndex"`
	ModuleTitle string    `gorm:"size:255" json:"moduleTitle"`
	CompletedAt time.Time `json:"completedAt"`
}

func (ModuleCompletion) TableName() string {
	return "module_completions"
}
