package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xelth-com/manualsgo/internal/ai"
	"github.com/xelth-com/manualsgo/internal/config"
	"github.com/xelth-com/manualsgo/internal/database"
	"github.com/xelth-com/manualsgo/internal/handlers"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/services/erp"
	"github.com/xelth-com/manualsgo/internal/translation"
	"github.com/xelth-com/manualsgo/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in the shutdown handler below

	// 3. Synchronize schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Document{},
		&models.Section{},
		&models.ContentModule{},
		&models.Language{},
		&models.SectionTranslation{},
		&models.ContentModuleTranslation{},
		&models.Component{},
		&models.Bom{},
		&models.BomItem{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Translation progress hub
	hub := websocket.NewHub()
	go hub.Run()

	// 5. HTTP router
	router := handlers.NewRouter(db, cfg, hub)

	// 6. Optional Gemini suggester
	var geminiClient *ai.GeminiClient
	if cfg.AI.GeminiAPIKey != "" {
		geminiClient, err = ai.NewGeminiClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Printf("⚠️ AI: failed to init Gemini client: %v", err)
		} else {
			router.SetSuggester(translation.NewSuggester(geminiClient))
			log.Println("✅ AI: translation suggestions enabled")
		}
	} else {
		log.Println("ℹ️ AI: translation suggestions disabled (no GEMINI_API_KEY)")
	}

	// 7. ERP component/BOM mirror
	erpService := erp.NewSyncService(db, cfg.ERP)
	erpService.Start()

	// 8. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️ Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	erpService.Stop()

	if geminiClient != nil {
		geminiClient.Close()
	}

	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
