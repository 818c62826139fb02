package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Grok     GrokConfig
	Storage  StorageConfig
	Queue    QueueConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GrokConfig struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

type StorageConfig struct {
	UploadPath string
}

type QueueConfig struct {
	PollInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "internship_portal"),
		},
		Grok: GrokConfig{
			APIKey:  getEnv("GROK_API_KEY", ""),
			APIURL:  getEnv("GROK_API_URL", "https://api.x.ai/v1/chat/completions"),
			Model:   getEnv("GROK_MODEL", "grok-beta"),
			Timeout: getEnvAsDuration("GROK_TIMEOUT", "30s"),
		},
		Storage: StorageConfig{
			UploadPath: getEnv("UPLOAD_PATH", "./uploads"),
		},
		Queue: QueueConfig{
			PollInterval: getEnvAsDuration("QUEUE_POLL_INTERVAL", "5s"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
