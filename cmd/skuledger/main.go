package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
