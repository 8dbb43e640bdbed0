package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shellwright/shellwright/internal/config"
	"github.com/shellwright/shellwright/internal/install"
	"github.com/shellwright/shellwright/internal/logging"
	"github.com/shellwright/shellwright/internal/mcp"
	"github.com/shellwright/shellwright/internal/privileged"
	"github.com/shellwright/shellwright/internal/syslogs"
	"github.com/shellwright/shellwright/internal/terminal"
)

func main() {
	installFlag := flag.Bool("install", false, "Register this server in the Claude Desktop config and exit")
	flag.Parse()

	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if *installFlag {
		if err := install.Run("", logger.Logger); err != nil {
			logger.Error("setup failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	registry := terminal.NewRegistry()
	manager := terminal.NewManager(registry, cfg.Terminal.DefaultShell, logger.Logger)

	srv := mcp.NewServer(
		manager,
		privileged.New(),
		syslogs.NewService(cfg.Syslog.Path),
		logger.Logger,
	)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve()
	}()

	select {
	case <-sigChan:
		logger.Info("shutting down")
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			manager.Shutdown()
			os.Exit(1)
		}
	}

	manager.Shutdown()
}
