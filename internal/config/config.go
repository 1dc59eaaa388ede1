package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	MySQLDSN           string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	JWTSecret          string
	SuperAdminUsername string
	SuperAdminEmail    string
	SuperAdminPassword string
	AllowedOrigins     []string
}

// Load builds Config from environment with sensible defaults.
// An optional .env file in the working directory is read first.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "3001"),
		MySQLDSN:           getEnv("MYSQL_DSN", "root:@tcp(localhost:3306)/landingcms?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		SuperAdminUsername: getEnv("SUPER_ADMIN_USERNAME", "superadmin"),
		SuperAdminEmail:    getEnv("SUPER_ADMIN_EMAIL", "superadmin@landingpage.com"),
		SuperAdminPassword: getEnv("SUPER_ADMIN_PASSWORD", "admin123456"),
		AllowedOrigins:     []string{getEnv("CORS_ORIGIN", "*")},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
