package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"devident/internal/cli"
	"devident/internal/config"
	"devident/internal/logger"
)

func main() {
	// Config lives next to the executable, same as the log file.
	ex, err := os.Executable()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfgPath := filepath.Join(filepath.Dir(ex), "config.json")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logging must be up before cobra runs, so scan for the flag directly.
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		}
	}

	// Open file for appending, create if not exists
	var logWriter io.Writer
	logFile, err := os.OpenFile(cfg.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer logFile.Close()
		logWriter = logFile
	}
	// A nil writer means stderr-only logging.

	log := logger.Setup(logWriter, verbose)

	rootCmd := cli.NewRootCmd(cfg, log)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
