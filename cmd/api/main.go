package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	apiconfig "verichain/internal/app/api/config"
	apiserver "verichain/internal/app/api/server"
	"verichain/internal/logger"
)

func main() {
	cfg := apiconfig.Load()
	logger.InitLogger(cfg.Stage, "verichain-api")
	defer logger.Sync()
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := apiserver.New(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize api server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(ctx); err != nil {
		log.Fatal("api server stopped", zap.Error(err))
	}
}
