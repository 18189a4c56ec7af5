package main

import (
	"fmt"
	"os"

	"lockedin-cli/internal/cli"
	"lockedin-cli/internal/config"
	"lockedin-cli/internal/logging"
)

func main() {
	configDir := config.DirFromArgs(os.Args[1:])
	if configDir == "" {
		configDir = os.Getenv("LOCKEDIN_CONFIG_DIR")
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger()

	rootCmd := cli.NewRootCmd(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
