// Package main is the entry point for the prtrace tool.
package main

import (
	"fmt"
	"os"

	"github.com/prtrace/prtrace/cmd"
	"github.com/prtrace/prtrace/internal/logging"
)

func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logging.Debug("starting prtrace", "log_level", logLevel)

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
