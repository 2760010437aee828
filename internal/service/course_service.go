package service

import (
	"context"
	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "courses:catalog"
	catalogCacheTTL = 10 * time.Minute
)

// CourseListItem is a catalog entry decorated with the caller's completion
// badge from the whole-course ledger.
type CourseListItem struct {
	model.Course
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	CompletionRepo *repository.CourseCompletionRepository
	Redis          *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, completionRepo *repository.CourseCompletionRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		CompletionRepo: completionRepo,
		Redis:          rdb,
	}
}

// List returns the full catalog. The catalog is read-mostly (seeded at
// startup), so it is served from Redis when possible; cache failures fall
// back to the database.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var cached []model.Course
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			s.Redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL)
		}
	}
	return courses, nil
}

// ListForUser decorates the catalog with the user's course-level completion
// badges via the batch lookup on the completion ledger.
func (s *CourseService) ListForUser(ctx context.Context, userID uint) ([]CourseListItem, error) {
	courses, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	completions, err := s.CompletionRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	completedAt := make(map[string]time.Time, len(completions))
	for _, c := range completions {
		completedAt[c.CourseID] = c.CompletedAt
	}

	items := make([]CourseListItem, 0, len(courses))
	for _, course := range courses {
		item := CourseListItem{Course: course}
		if at, ok := completedAt[course.ID]; ok {
			item.IsCompleted = true
			t := at
			item.CompletedAt = &t
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *CourseService) Get(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}
