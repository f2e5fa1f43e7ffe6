package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	consumerconfig "verichain/internal/app/consumer/config"
	consumerserver "verichain/internal/app/consumer/server"
	"verichain/internal/logger"
)

func main() {
	cfg := consumerconfig.Load()
	logger.InitLogger(cfg.Stage, "verichain-claim-ledger")
	defer logger.Sync()
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := consumerserver.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to init consumer", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("consumer stopped", zap.Error(err))
	}
}
