package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath string

	Host         string
	Port         int
	AllowOrigins []string
	MaxUploadMB  int
	LogLevel     string
	LogFile      string

	OracleBaseURL   string
	OracleAPIKey    string
	OracleModel     string
	OracleTimeoutMs int

	CandidateLimit int
	BatchWorkers   int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath: getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		Host:         getEnv("HOST", "127.0.0.1"),
		Port:         getEnvInt("PORT", 8080),
		AllowOrigins: strings.Split(getEnv("ALLOW_ORIGINS", "*"), ","),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 32),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", filepath.Join(cwd, "logs", "cotador.log")),

		OracleBaseURL:   getEnv("ORACLE_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		OracleAPIKey:    getEnv("ORACLE_API_KEY", ""),
		OracleModel:     getEnv("ORACLE_MODEL", "gemini-2.0-flash"),
		OracleTimeoutMs: getEnvInt("ORACLE_TIMEOUT_MS", 20000),

		CandidateLimit: getEnvInt("CANDIDATE_LIMIT", 40),
		BatchWorkers:   getEnvInt("BATCH_WORKERS", 4),
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
