package main

import (
	"log"
	"os"

	"github.com/pratik-anurag/feluda-examples/config"
	"github.com/pratik-anurag/feluda-examples/example"
	"github.com/pratik-anurag/feluda-examples/logging"
	"github.com/pratik-anurag/feluda-examples/versions"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Error loading config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Panicf("Error creating logger: %v", err)
	}
	defer logger.Sync()
	env := example.Env{Catalog: versions.FromBuild(), Logger: logger, Config: cfg}
	if err := example.Cpp(os.Stdout, env); err != nil {
		logger.Panic("Error running C++ example", zap.Error(err))
	}
}
