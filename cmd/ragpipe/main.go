package main

import (
	"github.com/joho/godotenv"
	"ragpipe/internal/cli"
)

func main() {
	// Optional .env for API keys and index auth tokens. Missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
