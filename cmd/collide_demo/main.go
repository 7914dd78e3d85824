package main

import (
	"flag"
	"fmt"
	"os"

	"collide3d/internal/config"
	"collide3d/internal/game"
	"collide3d/internal/logging"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults are used when empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	logger.Info("starting demo", zap.String("config", *configPath), zap.Int64("seed", cfg.Arena.Seed))
	g.Run()
}
