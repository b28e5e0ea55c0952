package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "leadcrm-backend/internal/adapter/http"
	"leadcrm-backend/internal/adapter/middleware"
	mysqlrepo "leadcrm-backend/internal/adapter/repository/mysql"
	"leadcrm-backend/internal/config"
	"leadcrm-backend/internal/infrastructure/cache"
	"leadcrm-backend/internal/infrastructure/db"
	"leadcrm-backend/internal/infrastructure/metrics"
	ucActivity "leadcrm-backend/internal/usecase/activity"
	ucAssignment "leadcrm-backend/internal/usecase/assignment"
	ucAttachment "leadcrm-backend/internal/usecase/attachment"
	ucLead "leadcrm-backend/internal/usecase/lead"
	ucWalkin "leadcrm-backend/internal/usecase/walkin"
	"leadcrm-backend/pkg/logger"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	log := logger.New(logger.Options{
		ServiceName: cfg.ServiceName,
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})
	if err := cfg.Validate(); err != nil {
		log.Error(ctx, "invalid config", err)
		os.Exit(1)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Error(ctx, "open mysql", err)
		os.Exit(1)
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Error(ctx, "auto-migrate", err)
			os.Exit(1)
		}
	}

	rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	if err != nil {
		log.Error(ctx, "open redis", err)
		os.Exit(1)
	}
	defer rdb.Close()

	tx := mysqlrepo.NewGormUoW(gdb)
	m := metrics.New()

	h := httpadp.Handlers{
		Health:      httpadp.NewHandler(),
		Leads:       httpadp.NewLeadHandler(ucLead.NewUsecase(tx), log, m),
		Activities:  httpadp.NewActivityHandler(ucActivity.NewUsecase(tx), log, m),
		WalkIns:     httpadp.NewWalkInHandler(ucWalkin.NewUsecase(tx), log, m),
		Assignments: httpadp.NewAssignmentHandler(ucAssignment.NewUsecase(tx), log, m),
		Attachments: httpadp.NewAttachmentHandler(ucAttachment.NewUsecase(tx), log, m),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLogger(log), m.Middleware())

	// auth must run first so idempotency keys are scoped to the caller
	httpadp.RegisterRoutes(e, h, m.Handler(),
		middleware.Auth([]byte(cfg.JWTSecret), log),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log),
	)

	go func() {
		addr := ":" + cfg.AppPort
		log.Info(ctx, "listening on "+addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server stopped", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutdown", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
