// Command endpoints prints the backend endpoint registry resolved from configuration.
package main

import (
	"os"

	"github.com/Sushanth18052005/mt5-EA/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(os.Stderr, logging.LevelError, logging.FormatText).Error("command failed", "error", err)
		os.Exit(1)
	}
}
