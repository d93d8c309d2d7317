package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/team-task-manager/modules/analytics"
	"github.com/example/team-task-manager/modules/comment"
	"github.com/example/team-task-manager/modules/demo"
	"github.com/example/team-task-manager/modules/notification"
	"github.com/example/team-task-manager/modules/task"
	"github.com/example/team-task-manager/modules/user"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Team Task Manager ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(user.NewModule())         // Fixed user directory (no dependencies)
	app.Register(notification.NewModule()) // Event consumer (subscribes to task/comment events)
	app.Register(task.NewModule())         // Core domain (depends on user, emits events)
	app.Register(analytics.NewModule())    // Read-only classifiers (depends on task)
	app.Register(comment.NewModule())      // Comment log (depends on task, user)
	app.Register(demo.NewModule())         // Driving adapter (seeds data, walks the services)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Registered services:")
	log.Println("  task:      create-task, get-task, list-tasks, list-tasks-by-status,")
	log.Println("             list-tasks-by-priority, list-overdue-tasks, list-starred-tasks,")
	log.Println("             update-task, update-status, delete-task, star-task, unstar-task,")
	log.Println("             search-tasks, bulk-update-status, get-report")
	log.Println("  analytics: evaluate-status, predict-delay-risk, user-summary, team-performance")
	log.Println("  comment:   add-comment, get-comments")
	log.Println("  user:      get-user, validate-user, list-users")
	log.Println("")
	log.Println("Team roster:")
	log.Println("  1: Adin Mustafić (Admin)")
	log.Println("  2: Lejla Hodžić (Manager)")
	log.Println("  3: Emir Kovač (Developer)")
	log.Println("  4: Sara Begić (Developer)")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
