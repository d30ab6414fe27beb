package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mhollis/dealscout/internal/cli"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
