package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/task-tracker/modules/api"
	"github.com/example/task-tracker/modules/notification"
	"github.com/example/task-tracker/modules/task"
	"github.com/example/task-tracker/modules/user"
	"github.com/example/task-tracker/storage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Tracker Service ===")

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "tracker.db"
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := storage.Seed(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	port := 3000
	if p := os.Getenv("PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = parsed
		}
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(user.NewModule(db))       // Independent module (no dependencies)
	app.Register(notification.NewModule()) // Event consumer (subscribes to task/user events)
	app.Register(task.NewModule(db))       // Core domain (depends on user, emits events)
	app.Register(api.NewModule(port))      // Driving adapter (depends on task and user)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(port)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
			"database": func(_ context.Context) error {
				return storage.Close(db)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("  GET    /tareas          - List all tasks")
	log.Println("  GET    /tareas/:id      - Get a task by ID")
	log.Println("  POST   /tareas          - Create a task")
	log.Println("  PUT    /tareas/:id      - Update a task (creates when the id is absent)")
	log.Println("  DELETE /tareas/:id      - Delete a task")
	log.Println("  GET    /usuarios        - List all users")
	log.Println("  GET    /usuarios/:id    - Get a user by ID")
	log.Println("  POST   /usuarios        - Create a user")
	log.Println("  PUT    /usuarios/:id    - Update a user (creates when the id is absent)")
	log.Println("  DELETE /usuarios/:id    - Delete a user (409 when tasks are assigned)")
	log.Println("  GET    /health          - Health check")
	log.Println("")
	log.Println("Set SEED_DEMO_DATA=true to load the demo data set on startup")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
