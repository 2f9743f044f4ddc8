package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pratik-anurag/feluda-examples/config"
	"github.com/pratik-anurag/feluda-examples/example"
	"github.com/pratik-anurag/feluda-examples/logging"
	"github.com/pratik-anurag/feluda-examples/server"
	"github.com/pratik-anurag/feluda-examples/versions"
	"go.uber.org/zap"
)

var aFlag = flag.String("a", "", "listen address, overrides "+config.EnvAddress)

func main() {
	flag.Parse()
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Error loading config: %v", err)
	}
	if *aFlag != "" {
		cfg.Address = *aFlag
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Panicf("Error creating logger: %v", err)
	}
	defer logger.Sync()
	if err := example.Python(os.Stdout); err != nil {
		logger.Panic("Error writing banner", zap.Error(err))
	}
	s, err := server.New(cfg.Address, versions.FromBuild(), logger)
	if err != nil {
		logger.Panic("Error creating server", zap.Error(err))
	}
	defer s.Close()
	errChan := make(chan error, 1)
	go func() { errChan <- s.ListenAndServe() }()
	select {
	case <-c:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			logger.Error("Error shutting down server", zap.Error(err))
		}
	case err := <-errChan:
		if err != nil {
			logger.Panic("Server stopped", zap.Error(err))
		}
	}
}
