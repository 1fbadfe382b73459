package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/avolkov/dau_transfer/pkg/log"

	"gitlab.com/avolkov/dau_transfer/config"
	"gitlab.com/avolkov/dau_transfer/internal"
)

func main() {
	log.Info("main: starting service")
	defer log.Sync()

	cfg := config.Load()
	log.Init(cfg.LogLevel)

	services, err := internal.New(cfg)
	if err != nil {
		log.Error("init error:", err)
		return
	}
	defer services.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := services.TelegramBot.Run(ctx); err != nil {
			log.Error("bot error:", err)
		}
	}()

	log.Info("main: bot started polling")

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Shutting down...")
}
