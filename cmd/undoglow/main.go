// cmd/undoglow/main.go
package main

import (
	"flag"
	stlog "log"
	"os"

	"github.com/mirelk/undoglow/internal/app"
	"github.com/mirelk/undoglow/internal/config"
	"github.com/mirelk/undoglow/internal/logger"
)

func main() {
	fs := flag.NewFlagSet(config.AppName, flag.ExitOnError)
	flags := config.DefineFlags(fs)
	if err := flags.ParseFlags(fs, os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}

	filePath := ""
	if fs.NArg() > 0 {
		filePath = fs.Arg(0)
	}

	// A config file problem falls back to defaults plus flag overrides.
	cfg, err := config.LoadConfig(*flags.ConfigFile, flags)
	if err != nil {
		stlog.Printf("Warning: config load: %v", err)
	}

	logOutput, err := cfg.Logger.OpenOutput()
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer logOutput.Close()
	logger.Init(cfg.Logger.Level(), logOutput)

	logger.Infof("Starting %s...", config.AppName)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	editorApp, err := app.NewApp(filePath, cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
