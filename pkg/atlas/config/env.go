package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Server holds the HTTP server settings read from the environment.
type Server struct {
	Port               string
	VocabularyPath     string
	StoplistPath       string
	HTTPTimeoutSeconds int
	CORSOrigins        []string
	LogLevel           string
	LogMetrics         bool
}

// LoadEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; variables already
// set are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// LoadServer reads server settings from ATLAS_* variables.
func LoadServer() *Server {
	return &Server{
		Port:               getEnv("ATLAS_PORT", "8080"),
		VocabularyPath:     getEnv("ATLAS_CONFIG", ""),
		StoplistPath:       getEnv("ATLAS_STOPLIST", ""),
		HTTPTimeoutSeconds: getEnvInt("ATLAS_HTTP_TIMEOUT_SECONDS", 30),
		CORSOrigins:        splitList(getEnv("ATLAS_CORS_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogMetrics:         getEnvBool("ATLAS_LOG_METRICS", false),
	}
}

// Loader returns a file loader for the configured paths.
func (s *Server) Loader() *Loader {
	return &Loader{VocabularyPath: s.VocabularyPath, StoplistPath: s.StoplistPath}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
