package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type PlatformConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

type DashboardConfig struct {
	PollInterval time.Duration
}

type UploadsConfig struct {
	StagingDir string
}

type Config struct {
	Server    ServerConfig
	Platform  PlatformConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Dashboard DashboardConfig
	Uploads   UploadsConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Platform: PlatformConfig{
			BaseURL:        getEnv("PLATFORM_API_URL", "http://localhost:9090/api/v1"),
			RequestTimeout: getDurationEnv("PLATFORM_REQUEST_TIMEOUT", time.Second*15),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET_KEY", "9A4D2AD385B2BAA8DC78F558B548F"),
			AccessTokenTTL: time.Hour * 24,
		},
		Dashboard: DashboardConfig{
			PollInterval: getDurationEnv("DASHBOARD_POLL_INTERVAL", time.Second*30),
		},
		Uploads: UploadsConfig{
			StagingDir: getEnv("UPLOAD_STAGING_DIR", "./uploads"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
