package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	Database         DatabaseConfig
	JWT              JWTConfig
	ExportSigningKey string
	AdminUsers       []string
	BcryptCost       int
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret   string
	TTLHours int
}

func Load() (*Config, error) {
	godotenv.Load()

	adminUsersStr := os.Getenv("ADMIN_USERS")
	adminUsers := []string{}
	if adminUsersStr != "" {
		adminUsers = strings.Split(adminUsersStr, ",")
		for i := range adminUsers {
			adminUsers[i] = strings.TrimSpace(adminUsers[i])
		}
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TTLHours: getEnvInt("JWT_TTL_HOURS", 72),
		},
		ExportSigningKey: getEnv("EXPORT_SIGNING_KEY", ""),
		AdminUsers:       adminUsers,
		BcryptCost:       getEnvInt("BCRYPT_COST", 10),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
