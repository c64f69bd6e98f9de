package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/avolkov/webauth-server/internal/api/http/httpctx"
	"github.com/avolkov/webauth-server/internal/api/http/router"
	httpServer "github.com/avolkov/webauth-server/internal/api/http/server"
	"github.com/avolkov/webauth-server/internal/config"
	"github.com/avolkov/webauth-server/internal/logger"
	"github.com/avolkov/webauth-server/internal/model"
	"github.com/avolkov/webauth-server/internal/password"
	"github.com/avolkov/webauth-server/internal/repository/postgres"
	"github.com/avolkov/webauth-server/internal/server"
	"github.com/avolkov/webauth-server/internal/service"
	"github.com/avolkov/webauth-server/internal/token"
	"github.com/avolkov/webauth-server/internal/validation"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)

	policy := validation.Policy{
		PasswordMinLength:     cfg.Auth.PasswordMinLength,
		RequireStrongPassword: cfg.Auth.RequireStrongPassword,
	}

	authService := service.NewAuth(userRepo, hasher, tokenManager, policy, logger)
	ctxMgr := httpctx.NewManager()

	gin.SetMode(gin.ReleaseMode)
	r := router.New(authService, db, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
