package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"taskboard/internal/config"
	"taskboard/internal/httpapi"
	"taskboard/internal/notify"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo)
	statsSvc := service.NewStatsService(taskRepo, categoryRepo, cfg.Timezone)
	importSvc := service.NewImportService(taskSvc, categorySvc, cfg.Timezone)

	server := httpapi.NewServer(taskSvc, categorySvc, statsSvc, importSvc, cfg.Timezone)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Routes(),
	}

	if cfg.ReportInterval > 0 {
		digestSvc := service.NewDigestService(taskRepo, cfg.Timezone)

		var notifier *notify.TelegramNotifier
		if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
			notifier, err = notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				log.Fatalf("telegram: %v", err)
			}
		}

		scheduler := service.NewSchedulerService(cfg.Timezone)
		if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			summary, err := digestSvc.Summary(jobCtx, time.Now())
			if err != nil {
				log.Printf("digest: %v", err)
				return
			}
			log.Printf("digest:\n%s", summary)
			if notifier != nil {
				if err := notifier.Send(summary); err != nil {
					log.Printf("digest notify: %v", err)
				}
			}
		}); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Task board listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
