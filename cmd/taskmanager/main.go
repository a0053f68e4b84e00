package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"task-manager/internal/config"
	"task-manager/internal/logger"
	"task-manager/internal/notify"
	"task-manager/internal/repository"
	"task-manager/internal/service"
	"task-manager/internal/storage"
	"task-manager/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.DevLogging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	taskRepo := repository.NewTaskRepository(store, zlog)
	views := view.New(zlog)
	reminderSvc := service.NewReminderService(taskRepo, views)

	stats := views.ComputeStats(taskRepo.List())
	zlog.Info("task manager started",
		zap.Int("tasks", stats.Total),
		zap.Int("pending", stats.Pending))

	if cfg.TelegramToken == "" {
		zlog.Info("no telegram token configured, printing summary and exiting")
		os.Stdout.WriteString(reminderSvc.DailySummary(time.Now()) + "\n")
		return
	}

	notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		zlog.Fatal("telegram", zap.Error(err))
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, func() {
		if err := notifier.Send(reminderSvc.DailySummary(time.Now())); err != nil {
			zlog.Error("send summary", zap.Error(err))
		}
	}); err != nil {
		zlog.Fatal("schedule summary", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	zlog.Info("daily summary scheduled", zap.String("time", cfg.SummaryTime))
	<-ctx.Done()
	zlog.Info("shutdown complete")
}
