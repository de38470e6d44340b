package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvFiles lists the dotenv candidates for env in priority order
func DotEnvFiles(env string) []string {
	files := []string{".env.local"}
	if env != "" {
		files = append(files, ".env."+env)
	}
	return append(files, ".env")
}

// LoadDotEnv loads the dotenv files found in dir. Earlier files win and
// variables already set in the process environment are never overwritten.
// Returns the files actually loaded.
func LoadDotEnv(dir, env string) []string {
	var loaded []string
	for _, name := range DotEnvFiles(env) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			loaded = append(loaded, path)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
