package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; variables already set are never overridden,
// so .env.local wins over .env.
var envFiles = []string{".env.local", ".env"}

// loadEnvFile loads every existing env file. It returns an error only when none was found.
func loadEnvFile() error {
	loaded := 0
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		loaded++
	}
	if loaded == 0 {
		return fmt.Errorf("no .env file found")
	}
	return nil
}
