package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment
// variables; a local .env file is honored when present.
type Config struct {
	Server   ServerConfig
	Mail     MailConfig
	Catalog  CatalogConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MailConfig carries the SMTP relay credentials. Both order notification
// emails are sent from Username; OwnerEmail receives the new-order alert and
// defaults to the sender mailbox, matching the shop's single-operator setup.
type MailConfig struct {
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	OwnerEmail string
}

type CatalogConfig struct {
	// ProductID is the catalog entry sold through the purchase form.
	ProductID string
}

// Load reads configuration from the environment, loading a .env file first
// if one exists in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Mail: MailConfig{
			SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:   getEnvAsInt("SMTP_PORT", 587),
			Username:   getEnv("EMAIL_USER", ""),
			Password:   getEnv("EMAIL_PASS", ""),
			OwnerEmail: getEnv("OWNER_EMAIL", ""),
		},
		Catalog: CatalogConfig{
			ProductID: getEnv("CATALOG_PRODUCT_ID", "1"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.Mail.OwnerEmail == "" {
		cfg.Mail.OwnerEmail = cfg.Mail.Username
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Mail.Username == "" {
		return fmt.Errorf("EMAIL_USER is required")
	}

	if c.Mail.Password == "" {
		return fmt.Errorf("EMAIL_PASS is required")
	}

	if c.Mail.SMTPPort <= 0 {
		return fmt.Errorf("SMTP_PORT must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
