// Command emotion analyzes journal text from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
)

func main() {
	if err := newRootCmd(clockwork.NewRealClock()).Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
