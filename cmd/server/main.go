package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillone/skillpath-backend/internal/app"
	apphttp "github.com/skillone/skillpath-backend/internal/http"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	srv := apphttp.NewServer(":"+application.Cfg.Port, application.Router, application.Log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		application.Log.Info("Received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			application.Log.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.Cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		application.Log.Error("Graceful shutdown failed", "error", err)
	}
}
