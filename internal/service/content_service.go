package service

import (
	"adaptive_edu_backend/internal/model"
	"adaptive_edu_backend/internal/repository"
	"adaptive_edu_backend/internal/util"
	"adaptive_edu_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService serves the lesson/section content a routed student sees
// next. Level-filtered lookups are read-through cached in redis since the
// same track is fetched by every student routed onto it.
type ContentService struct {
	LessonRepo   *repository.LessonRepository
	SectionRepo  *repository.SectionRepository
	ReminderRepo *repository.ReminderRepository
	ExerciseRepo *repository.ExerciseRepository
	Redis        *redis.Client
}

func NewContentService(
	lessonRepo *repository.LessonRepository,
	sectionRepo *repository.SectionRepository,
	reminderRepo *repository.ReminderRepository,
	exerciseRepo *repository.ExerciseRepository,
	rdb *redis.Client,
) *ContentService {
	return &ContentService{
		LessonRepo:   lessonRepo,
		SectionRepo:  sectionRepo,
		ReminderRepo: reminderRepo,
		ExerciseRepo: exerciseRepo,
		Redis:        rdb,
	}
}

const contentCacheTTL = 10 * time.Minute

func (s *ContentService) ListLessons(page, limit int) ([]model.Lesson, int64, error) {
	return s.LessonRepo.List(page, limit)
}

func (s *ContentService) GetLesson(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

// SectionQuestion is a diagnostic question as shown to a student: the stem
// and options without the correct answer.
type SectionQuestion struct {
	ID      uint                `json:"id"`
	Shape   model.QuestionShape `json:"shape"`
	Content string              `json:"content"`
	Options json.RawMessage     `json:"options,omitempty"`
	Points  int                 `json:"points"`
	Order   int                 `json:"order"`
}

type SectionContent struct {
	ID                uint              `json:"id"`
	Title             string            `json:"title"`
	Content           string            `json:"content"`
	LessonID          uint              `json:"lessonId"`
	Diagnostics       []SectionQuestion `json:"diagnostics"`
	MainExercises     []model.Exercise  `json:"mainExercises"`
	AdvancedExercises []model.Exercise  `json:"advancedExercises"`
	RemedialExercises []model.Exercise  `json:"remedialExercises"`
}

// GetSectionContent assembles one section for the student view: the
// diagnostic quiz (answers withheld) and the three exercise tiers.
func (s *ContentService) GetSectionContent(sectionID uint) (*SectionContent, error) {
	section, err := s.SectionRepo.FindByIDWithContent(sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}

	content := &SectionContent{
		ID:          section.ID,
		Title:       section.Title,
		Content:     section.Content,
		LessonID:    section.LessonID,
		Diagnostics: make([]SectionQuestion, 0, len(section.Diagnostics)),
	}

	for _, q := range section.Diagnostics {
		content.Diagnostics = append(content.Diagnostics, SectionQuestion{
			ID:      q.ID,
			Shape:   q.Shape,
			Content: q.Content,
			Options: q.Options,
			Points:  q.Points,
			Order:   q.Order,
		})
	}

	for _, ex := range section.Exercises {
		switch ex.Level {
		case model.ExerciseMain:
			content.MainExercises = append(content.MainExercises, ex)
		case model.ExerciseAdvanced:
			content.AdvancedExercises = append(content.AdvancedExercises, ex)
		case model.ExerciseRemedial:
			content.RemedialExercises = append(content.RemedialExercises, ex)
		}
	}

	return content, nil
}

// GetRemindersByLevel returns the reminder track for a routed level with the
// attached exercises nested, empty slice when the track has none.
func (s *ContentService) GetRemindersByLevel(ctx context.Context, sectionID uint, level Level) ([]model.Reminder, error) {
	if level != LevelAdvanced && level != LevelBasic {
		return nil, util.ErrInvalidLevel
	}

	cacheKey := fmt.Sprintf("section:%d:reminders:%d", sectionID, level)
	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var reminders []model.Reminder
		if err := json.Unmarshal([]byte(cached), &reminders); err == nil {
			return reminders, nil
		}
	}

	reminders, err := s.ReminderRepo.ListBySectionAndType(sectionID, model.ReminderType(level))
	if err != nil {
		return nil, err
	}
	if reminders == nil {
		reminders = []model.Reminder{}
	}

	if data, err := json.Marshal(reminders); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, data, contentCacheTTL).Err(); err != nil {
			logger.Log.Warn("reminder cache write failed", zap.Error(err))
		}
	}

	return reminders, nil
}

// GetExercisesByLevel returns one exercise tier of a section.
func (s *ContentService) GetExercisesByLevel(ctx context.Context, sectionID uint, level model.ExerciseLevel) ([]model.Exercise, error) {
	if level < model.ExerciseMain || level > model.ExerciseRemedial {
		return nil, util.ErrInvalidLevel
	}

	cacheKey := fmt.Sprintf("section:%d:exercises:%d", sectionID, level)
	if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
		var exercises []model.Exercise
		if err := json.Unmarshal([]byte(cached), &exercises); err == nil {
			return exercises, nil
		}
	}

	exercises, err := s.ExerciseRepo.ListBySectionAndLevel(sectionID, level)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []model.Exercise{}
	}

	if data, err := json.Marshal(exercises); err == nil {
		if err := s.Redis.Set(ctx, cacheKey, data, contentCacheTTL).Err(); err != nil {
			logger.Log.Warn("exercise cache write failed", zap.Error(err))
		}
	}

	return exercises, nil
}
