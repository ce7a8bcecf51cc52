package storage

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/domain/user"
)

// Open connects to the SQLite database at path and runs auto-migrations
// for both entities. The returned handle is shared by the user and task
// modules.
func Open(path string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&user.User{}, &task.Task{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Close closes the underlying sql.DB handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Seed loads a small demo data set. It is a no-op when the users table
// already has rows, so restarts do not duplicate data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&user.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := []*user.User{
		{Name: "Alice Johnson", Email: "alice@example.com"},
		{Name: "Bob Smith", Email: "bob@example.com"},
		{Name: "Charlie Brown", Email: "charlie@example.com"},
		{Name: "Dana White", Email: "dana@example.com"},
	}
	for _, u := range users {
		if err := db.Create(u).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Name, err)
		}
		log.Printf("[storage] Seeded user %d: %s", u.ID, u.Name)
	}

	due1 := task.NewDate(2025, time.June, 2)
	due2 := task.NewDate(2025, time.April, 23)
	due3 := task.NewDate(2025, time.May, 16)
	tasks := []*task.Task{
		{
			Title:          "Bootcamp project",
			Description:    "Final project for the services bootcamp",
			Status:         task.StatusInProgress,
			DueDate:        &due1,
			AssignedUserID: users[0].ID,
		},
		{
			Title:          "Work presentation",
			Description:    "Prepare the pending work presentation",
			Status:         task.StatusCompleted,
			DueDate:        &due2,
			AssignedUserID: users[1].ID,
		},
		{
			Title:          "Field report",
			Description:    "Write the field report for the next issue",
			Status:         task.StatusPending,
			DueDate:        &due3,
			AssignedUserID: users[2].ID,
		},
	}
	for _, t := range tasks {
		// Seeded tasks go through the same status policy as any write.
		t.Status = task.Derive(t.Status, t.DueDate, time.Now())
		if err := db.Create(t).Error; err != nil {
			return fmt.Errorf("failed to seed task %s: %w", t.Title, err)
		}
		log.Printf("[storage] Seeded task %d: %s", t.ID, t.Title)
	}

	return nil
}
