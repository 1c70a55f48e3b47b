package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rcliao/memcurve/internal/cli"
)

func main() {
	// A missing .env is fine; the environment and config file still apply.
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
