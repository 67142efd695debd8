package main

import (
	"flag"
	"fmt"
	"os"

	"Viewer3D/internal/config"
	"Viewer3D/internal/console"
	"Viewer3D/internal/engine"
	"Viewer3D/internal/logger"
	"Viewer3D/internal/window"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the viewer configuration")
	headless := flag.Bool("headless", false, "read commands from stdin instead of opening a window")
	logLevel := flag.String("log-level", "", "override the configured log level")
	initConfig := flag.Bool("init-config", false, "write the default configuration to -config and exit")
	flag.Parse()

	if *initConfig {
		if err := config.Default().Save(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *configPath)
		return
	}

	if err := run(*configPath, *headless, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, headless bool, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := logger.InitWithLevel(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	logger.Log.Info("Viewer3D initializing...", zap.String("config", configPath), zap.Bool("headless", headless))

	session, err := engine.NewSession(cfg, logger.Log)
	if err != nil {
		return err
	}

	if headless {
		fmt.Println("Type 'help' for a list of commands.")
		return console.New(session, os.Stdout, logger.Log.Named("console")).Run(os.Stdin)
	}
	return window.New(session, cfg, logger.Log.Named("window")).Run()
}
