package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StoreBackend   string
	SessionBackend string

	JWTSecret  string
	SessionTTL time.Duration
	CacheTTL   time.Duration

	ImageBaseURL string
	CORSOrigins  []string

	JobsEnabled      bool
	MissedDoseCron   string
	SessionPurgeCron string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

/*
* Load the .env file if present, otherwise fall back to the process environment
* Every key has a development default so the server boots locally
 */
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "4000"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "medisure"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		StoreBackend:     getEnv("STORE_BACKEND", StoreMongo),
		SessionBackend:   getEnv("SESSION_BACKEND", StoreRedis),
		JWTSecret:        getEnv("JWT_SECRET", "medisure-secret-key"),
		SessionTTL:       getEnvDuration("SESSION_TTL", 15*24*time.Hour),
		CacheTTL:         getEnvDuration("CACHE_TTL", 10*time.Minute),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", "http://localhost:5000"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5000,http://localhost:5001")),
		JobsEnabled:      getEnvBool("JOBS_ENABLED", true),
		MissedDoseCron:   getEnv("MISSED_DOSE_CRON", "5 0 * * *"),
		SessionPurgeCron: getEnv("SESSION_PURGE_CRON", "@hourly"),
	}

	if cfg.JWTSecret == "medisure-secret-key" && cfg.IsProduction() {
		log.Println("WARNING: JWT_SECRET is using the development default")
	}
	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
