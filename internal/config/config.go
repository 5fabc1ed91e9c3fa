package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DBConfig holds database configuration
type DBConfig struct {
	ConnString    string
	MigrationsDir string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Addr string
	Env  string
}

// LLMConfig holds language-model endpoint configuration
type LLMConfig struct {
	BaseURL string
	Model   string
	APIKey  string
}

// SMTPConfig holds outbound mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// IMAPConfig holds inbound mail configuration
type IMAPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Mailbox  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Config holds all configuration, read once at startup and passed to
// each service constructor.
type Config struct {
	DB     DBConfig
	Server ServerConfig
	LLM    LLMConfig
	SMTP   SMTPConfig
	IMAP   IMAPConfig
	Log    LogConfig
}

// Load loads configuration from environment variables. A .env file is
// honored when present but not required.
func Load() (*Config, error) {
	loadDotEnv()

	config := &Config{
		DB: DBConfig{
			ConnString:    os.Getenv("POSTGRES_CONN"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDRESS", "0.0.0.0:8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		LLM: LLMConfig{
			BaseURL: getEnv("LLM_BASE_URL", "http://localhost:11434/v1"),
			Model:   getEnv("LLM_MODEL", "tinyllama"),
			APIKey:  os.Getenv("LLM_API_KEY"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_HOST_USER"),
			Password: os.Getenv("EMAIL_HOST_PASSWORD"),
			From:     getEnv("DEFAULT_FROM_EMAIL", os.Getenv("EMAIL_HOST_USER")),
		},
		IMAP: IMAPConfig{
			Host:     getEnv("IMAP_SERVER", "imap.gmail.com"),
			Port:     getEnvAsInt("IMAP_PORT", 993),
			Username: os.Getenv("EMAIL_HOST_USER"),
			Password: os.Getenv("EMAIL_HOST_PASSWORD"),
			Mailbox:  getEnv("IMAP_MAILBOX", "INBOX"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if config.DB.ConnString == "" {
		return nil, fmt.Errorf("POSTGRES_CONN env variable is not set")
	}

	return config, nil
}

// loadDotEnv loads a .env file if one exists. Missing files are fine,
// the process environment wins either way.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
