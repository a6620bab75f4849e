package main

import (
	"context"
	"log"

	"legal-chat-be/internal/bootstrap"
	"legal-chat-be/internal/config"
	"legal-chat-be/internal/server"
	"legal-chat-be/internal/tracer"
	"legal-chat-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.AuditService.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	color.Green("legal-chat-be ready (env: %s)", cfg.App.Environment)

	// 6. Run Server
	log.Fatal(srv.Run())
}
