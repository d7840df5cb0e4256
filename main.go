package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pmdsite/app/config"
	"pmdsite/app/service/assistant"
	"pmdsite/app/service/content"
	"pmdsite/app/service/responder"
	"pmdsite/app/service/viewstate"
	"pmdsite/app/service/web"
	"pmdsite/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, content.New)
	do.Provide(di, responder.New)
	do.Provide(di, viewstate.New)
	do.Provide(di, web.New)
	do.Provide(di, assistant.New)

	webSvc, err := do.Invoke[*web.Service](di)
	if err != nil {
		log.Fatalf("web service init failed: %v", err)
	}
	assistantSvc, err := do.Invoke[*assistant.Service](di)
	if err != nil {
		log.Fatalf("assistant service init failed: %v", err)
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	group, groupCtx := errgroup.WithContext(appCtx)
	group.Go(func() error {
		return webSvc.Run(groupCtx)
	})
	group.Go(func() error {
		return assistantSvc.Run(groupCtx)
	})

	slog.Info("Service started", "telegram", true)

	if err = group.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
	}
}
