package database

import (
	"elearn_backend/internal/model"
	"log"

	"gorm.io/gorm"
)

// SeedCourses populates the catalog on first run. The count guard makes the
// bootstrap idempotent; courses are read-mostly afterwards and never edited
// through this service.
func SeedCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultCourses := []model.Course{
		{
			Title:       "Introduction to Web Development",
			Description: "Build and deploy your first web pages with HTML, CSS and a touch of JavaScript.",
			Instructor:  "Sarah Chen",
			Duration:    "6 weeks",
			Syllabus: []string{
				"How the Web Works",
				"HTML Foundations",
				"Styling with CSS",
				"JavaScript Basics",
				"Responsive Layouts",
				"Publishing Your Site",
			},
			Objectives: []string{
				"Understand the request/response cycle",
				"Structure semantic HTML documents",
				"Style pages with modern CSS",
				"Add interactivity with JavaScript",
			},
			Thumbnail: "/static/thumbnails/webdev.png",
		},
		{
			Title:       "Python for Data Analysis",
			Description: "From raw CSV files to clear insights using pandas and matplotlib.",
			Instructor:  "Miguel Alvarez",
			Duration:    "8 weeks",
			Syllabus: []string{
				"Python Refresher",
				"Working with pandas DataFrames",
				"Cleaning Messy Data",
				"Aggregation and Grouping",
				"Visualization with matplotlib",
			},
			Objectives: []string{
				"Load and clean tabular datasets",
				"Summarize data with groupby operations",
				"Communicate findings with charts",
			},
			Thumbnail: "/static/thumbnails/pydata.png",
		},
		{
			Title:       "Databases from the Ground Up",
			Description: "Relational modeling, SQL, transactions and indexes, explained without hand-waving.",
			Instructor:  "Priya Nair",
			Duration:    "5 weeks",
			Syllabus: []string{
				"Relational Modeling",
				"SQL Queries",
				"Joins and Aggregations",
				"Transactions and Isolation",
				"Indexes and Query Plans",
			},
			Objectives: []string{
				"Design normalized schemas",
				"Write correct multi-table queries",
				"Reason about concurrency and indexes",
			},
		},
	}

	for i := range defaultCourses {
		if err := db.Create(&defaultCourses[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d default courses", len(defaultCourses))
	return nil
}
