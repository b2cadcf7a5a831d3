package database

import (
	"adaptive_edu_backend/internal/config"
	"adaptive_edu_backend/internal/model"
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

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Lesson{},
		&model.Section{},
		&model.Diagnostic{},
		&model.Reminder{},
		&model.Exercise{},
		&model.Result{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDemoLesson(db)

	return db, nil
}

// seedDemoLesson inserts one complete lesson when the table is empty so a
// fresh install has something to route against.
func seedDemoLesson(db *gorm.DB) {
	var count int64
	db.Model(&model.Lesson{}).Count(&count)
	if count > 0 {
		return
	}

	lesson := &model.Lesson{
		Title:       "Fractions",
		Description: "Adding, comparing and simplifying fractions",
		LevelID:     1,
	}
	if err := db.Create(lesson).Error; err != nil {
		log.Printf("demo lesson seed skipped: %v", err)
		return
	}

	section := &model.Section{
		Title:    "Adding fractions with like denominators",
		Content:  "When denominators match, add the numerators and keep the denominator.",
		Order:    1,
		LessonID: lesson.ID,
	}
	db.Create(section)

	diagnostics := []model.Diagnostic{
		{
			SectionID:     section.ID,
			Shape:         model.SingleChoice,
			Content:       "What is 1/5 + 2/5?",
			Options:       []byte(`["2/5","3/5","3/10","1/5"]`),
			CorrectAnswer: "3/5",
			Explanation:   "Add the numerators: 1 + 2 = 3, denominator stays 5.",
			Points:        10,
			Order:         1,
		},
		{
			SectionID:     section.ID,
			Shape:         model.MultipleChoice,
			Content:       "Which of these equal one half?",
			Options:       []byte(`["2/4","3/5","5/10","4/6"]`),
			CorrectAnswer: `["2/4","5/10"]`,
			Explanation:   "2/4 and 5/10 both simplify to 1/2.",
			Points:        10,
			Order:         2,
		},
		{
			SectionID:     section.ID,
			Shape:         model.FillBlank,
			Content:       "3/8 + 2/8 = ?",
			CorrectAnswer: "5/8, five eighths",
			Explanation:   "3 + 2 = 5 over the shared denominator 8.",
			Points:        10,
			Order:         3,
		},
	}
	for i := range diagnostics {
		db.Create(&diagnostics[i])
	}

	reminders := []model.Reminder{
		{
			SectionID:    section.ID,
			ReminderType: model.ReminderAdvanced,
			Title:        "Unlike denominators",
			Content:      "To add unlike denominators, rewrite both fractions over the least common denominator first.",
		},
		{
			SectionID:    section.ID,
			ReminderType: model.ReminderBasic,
			Title:        "What a fraction means",
			Content:      "The denominator counts equal parts of a whole, the numerator counts how many of them you take.",
		},
	}
	for i := range reminders {
		db.Create(&reminders[i])
	}

	advID := reminders[0].ID
	basicID := reminders[1].ID
	exercises := []model.Exercise{
		{
			SectionID:     section.ID,
			Level:         model.ExerciseMain,
			Title:         "Warm-up",
			Content:       "Compute 2/7 + 3/7.",
			CorrectAnswer: "5/7",
			Explanation:   "Same denominator, so 2 + 3 = 5 sevenths.",
			Points:        10,
		},
		{
			SectionID:     section.ID,
			ReminderID:    &advID,
			Level:         model.ExerciseAdvanced,
			Title:         "Unlike denominators",
			Content:       "Compute 1/3 + 1/6 and simplify.",
			CorrectAnswer: "1/2",
			Explanation:   "1/3 = 2/6, and 2/6 + 1/6 = 3/6 = 1/2.",
			Points:        10,
		},
		{
			SectionID:     section.ID,
			ReminderID:    &basicID,
			Level:         model.ExerciseRemedial,
			Title:         "Counting parts",
			Content:       "A pizza is cut into 8 slices and you take 3. What fraction is that?",
			CorrectAnswer: "3/8",
			Explanation:   "3 of 8 equal parts is 3/8.",
			Points:        10,
		},
	}
	for i := range exercises {
		db.Create(&exercises[i])
	}
}
