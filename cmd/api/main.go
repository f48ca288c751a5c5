package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-backend/config"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/repository/memstore"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/spell"
	"go-resume-backend/pkg/upload"
	"go-resume-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume backend", "port", cfg.Port)

	// 3. Open Record Store
	store, err := memstore.Open(cfg.DataFile)
	if err != nil {
		logger.Log.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}
	if cfg.DataFile != "" {
		logger.Log.Info("Record store mirrored to disk", "path", cfg.DataFile)
	}

	// 4. Setup Repositories
	experienceRepo := memstore.NewExperienceRepository(store)
	educationRepo := memstore.NewEducationRepository(store)
	skillRepo := memstore.NewSkillRepository(store)
	userInformationRepo := memstore.NewUserInformationRepository(store)
	customSectionRepo := memstore.NewCustomSectionRepository(store)

	// 5. Setup Upload Saver and Spell Checker
	uploads := upload.NewSaver(cfg.UploadDir, cfg.MaxLogoWidth)
	checker := spell.NewChecker()

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, cfg.DefaultLogo)
	educationUC := usecase.NewEducationUsecase(educationRepo, cfg.DefaultLogo)
	skillUC := usecase.NewSkillUsecase(skillRepo, cfg.DefaultLogo)
	userInformationUC := usecase.NewUserInformationUsecase(userInformationRepo, validate)
	customSectionUC := usecase.NewCustomSectionUsecase(customSectionRepo)
	spellcheckUC := usecase.NewSpellcheckUsecase(checker)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ExperienceUC:      experienceUC,
		EducationUC:       educationUC,
		SkillUC:           skillUC,
		UserInformationUC: userInformationUC,
		CustomSectionUC:   customSectionUC,
		SpellcheckUC:      spellcheckUC,
		Uploads:           uploads,
		Config:            cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
