package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	wallverse "github.com/boopul22/wallpaer-site-blog"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("wallverse %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func serve() error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := wallverse.LoadConfig()
	if err != nil {
		return err
	}

	app := wallverse.New(cfg)
	if err := app.Setup(); err != nil {
		return err
	}
	defer app.Close()

	app.Echo.Server.ReadTimeout = 15 * time.Second
	app.Echo.Server.WriteTimeout = 30 * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- app.Start()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	app.Echo.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

func printUsage() {
	fmt.Println(`wallverse - wallpaper gallery and blog content API built with Go and Echo

Usage:
  wallverse [command]

Commands:
  serve         Run the HTTP server (default)
  version       Print the wallverse version
  help          Show this help message

Configuration is read from the environment and an optional .env file:
  ADMIN_PASSWORD, ADMIN_TOKEN_SECRET (required), SITE_NAME, SITE_URL, ADDR,
  DATABASE_DRIVER, DATABASE_URL, METRICS_ENABLED, LOG_LEVEL`)
}
