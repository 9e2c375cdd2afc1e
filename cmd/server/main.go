package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnsafe/internal/config"
	"learnsafe/internal/database"
	"learnsafe/internal/handlers"
	"learnsafe/internal/repository"
	"learnsafe/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the profile store. Storage trouble is never fatal: the
	// learning flows run memory-only when the database is unavailable.
	profileService := service.NewProfileService(openProfileRepository(cfg))

	if profile := profileService.Load(); profile != nil {
		log.Printf("Loaded profile for %s (grade %s)", profile.Name, profile.Grade)
	} else {
		log.Println("No stored profile, registration required")
	}

	// Initialize services
	registrationService := service.NewRegistrationService(profileService)
	sessionService := service.NewSessionService(profileService)
	wellnessService := service.NewWellnessService(profileService)

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.FromEmail, cfg.FromName, cfg.EmailDebug)
	if err != nil {
		log.Printf("Warning: report email unavailable: %v", err)
		reportService, _ = service.NewReportService("", "", "", false)
	}

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileService, registrationService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	supervisorHandler := handlers.NewSupervisorHandler(profileService, reportService)

	// Setup routes
	mux := http.NewServeMux()

	// Registration and profile
	mux.HandleFunc("GET /register", profileHandler.GetRegistrationForm)
	mux.HandleFunc("POST /register", profileHandler.Register)
	mux.HandleFunc("GET /profile", profileHandler.GetProfile)
	mux.HandleFunc("GET /subjects", profileHandler.GetSubjects)

	// Session lifecycle
	mux.HandleFunc("POST /session/start", sessionHandler.Start)
	mux.HandleFunc("GET /session", sessionHandler.Current)
	mux.HandleFunc("POST /session/abandon", sessionHandler.Abandon)

	// STEM flow steps
	mux.HandleFunc("POST /session/identify", sessionHandler.SubmitGap)
	mux.HandleFunc("POST /session/learn/advance", sessionHandler.AdvanceLearn)
	mux.HandleFunc("POST /session/summary", sessionHandler.SubmitSummary)
	mux.HandleFunc("POST /session/practice/answer", sessionHandler.SubmitPracticeAnswer)

	// Humanities flow steps
	mux.HandleFunc("POST /session/fact", sessionHandler.AddFact)
	mux.HandleFunc("POST /session/assess/advance", sessionHandler.AdvanceAssess)
	mux.HandleFunc("POST /session/explore", sessionHandler.ExploreArea)
	mux.HandleFunc("POST /session/explore/advance", sessionHandler.AdvanceExplore)
	mux.HandleFunc("POST /session/quiz/select", sessionHandler.SelectQuizAnswer)
	mux.HandleFunc("POST /session/quiz/submit", sessionHandler.SubmitQuiz)

	// Shared terminal step
	mux.HandleFunc("POST /session/reflect", sessionHandler.FinishReflection)

	// Wellness collaborators
	mux.HandleFunc("POST /wellness/journal", wellnessHandler.SaveJournal)
	mux.HandleFunc("POST /wellness/breathing/complete", wellnessHandler.CompleteBreathing)

	// Supervisor views
	mux.HandleFunc("GET /supervisor/report", supervisorHandler.GetReport)
	mux.HandleFunc("POST /supervisor/report/email", supervisorHandler.EmailReport)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// openProfileRepository connects the database-backed profile repository.
// Any failure returns nil so the profile service starts memory-only.
func openProfileRepository(cfg *config.Config) service.ProfileRepository {
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Printf("Warning: profile storage unavailable, running memory-only: %v", err)
		return nil
	}

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Printf("Warning: migrations failed, running memory-only: %v", err)
		db.Close()
		return nil
	}

	log.Println("Migrations completed successfully")
	return repository.NewProfileRepository(db)
}
