package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	ServerPort        string
	StorageBackend    string
	StorageKey        string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	RedisURL          string
	RedisPrefix       string
	ResetCorruptState bool
	CORSOrigins       []string
	Debug             bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		StorageKey:        getEnv("STORAGE_KEY", "tasks"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "taskboard"),
		DBPassword:        getEnv("DB_PASSWORD", "taskboard"),
		DBName:            getEnv("DB_NAME", "taskboard"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix:       getEnv("REDIS_PREFIX", "taskboard:"),
		ResetCorruptState: getBool("RESET_CORRUPT_STATE", false),
		CORSOrigins:       getList("CORS_ORIGINS", []string{"*"}),
		Debug:             getBool("DEBUG", false),
	}
}

// DSN is the PostgreSQL connection string for the postgres backend.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("invalid %s=%q, using %v", key, value, defaultVal)
		return defaultVal
	}
	return b
}

func getList(key string, defaultVal []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
