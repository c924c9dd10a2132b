package main

import (
	"fmt"
	"os"

	"notenest/notenest/server"
	"notenest/notenest/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := server.Bootstrap()
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup error:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := server.Run(cfg); err != nil {
		logging.ErrorLogger.Error("server error", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
