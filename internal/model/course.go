package model

// Course is seeded once at startup and treated as read-mostly afterwards.
// The syllabus is an ordered list of module titles; a module's index within
// the slice is its identity and is never reordered once published.
// swagger:model Course
type Course struct {
	UUIDBase
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Instructor  string   `gorm:"size:100" json:"instructor"`
	Duration    string   `gorm:"size:50" json:"duration"`
	Syllabus    []string `gorm:"serializer:json" json:"syllabus"`
	Objectives  []string `gorm:"serializer:json" json:"objectives"`
	Thumbnail   string   `gorm:"size:255" json:"thumbnail,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
