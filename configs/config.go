// Package config resolves runtime settings (DATABASE_URL, JWT_SECRET, PORT,
// admin seed credentials) from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of an environment variable, loading a local .env
// file first when one exists.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}
