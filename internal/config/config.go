package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ConfigBasePath     string
	ConfigFileName     string
	ServerPort         string
	HubJwtSecret       string
	Issuer             string
	LogLevel           string
	WatchConfig        bool
	CorsAllowedOrigins []string
)

// LoadConfig fills the package settings from the environment, reading a .env file first if present.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ConfigBasePath = getEnv("EXAM_HUB_CONFIG_BASE_PATH", "/srv/jupyterhub/config")
	ConfigFileName = getEnv("EXAM_HUB_CONFIG_FILE_NAME", "config-exam.yaml")
	ServerPort = getEnv("SERVER_PORT", "8080")
	HubJwtSecret = getEnv("HUB_JWT_SECRET", "")
	Issuer = getEnv("JWT_ISSUER", "jupyterhub")
	LogLevel = getEnv("LOG_LEVEL", "info")
	WatchConfig, _ = strconv.ParseBool(getEnv("CONFIG_WATCH", "true"))
	CorsAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))
}

// ConfigFilePath is the hub configuration file the settings point at.
func ConfigFilePath() string {
	return filepath.Join(ConfigBasePath, ConfigFileName)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
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
