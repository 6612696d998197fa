package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

const (
	defaultSecretKey     = "dev-secret-key-change-in-production"
	defaultDatabasePath  = "portfolio.db"
	defaultMailServer    = "smtp.gmail.com"
	defaultMailPort      = 587
	defaultMailSender    = "noreply@nicolasnorato.com"
	defaultContactTo     = "nnicolasnorato@gmail.com"
	defaultAdminPassword = "nicolas2024"
	defaultGitHubUser    = "NNorato123"
	defaultGitHubAPIURL  = "https://api.github.com"
	defaultTemplatesPath = "web/templates"
	defaultStaticPath    = "web/static"
)

type Config struct {
	// session cookie signing key
	SecretKey string

	// sqlite database file
	DatabasePath string

	// mail transport configuration
	MailServer        string
	MailPort          int
	MailUseTLS        bool
	MailUsername      string
	MailPassword      string
	MailDefaultSender string
	ContactRecipient  string

	// admin login secret; the bcrypt hash takes precedence when set
	AdminPassword     string
	AdminPasswordHash string

	// external repository fetcher
	GitHubUsername   string
	GitHubAPIBaseURL string

	// view layer paths
	TemplatesPath string
	StaticPath    string

	// HTTP server
	Port           string
	FrontendOrigin string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %t. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	cfg := Config{
		SecretKey:         getEnvOrDefault("SECRET_KEY", defaultSecretKey),
		DatabasePath:      getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		MailServer:        getEnvOrDefault("MAIL_SERVER", defaultMailServer),
		MailPort:          getEnvIntOrDefault("MAIL_PORT", defaultMailPort),
		MailUseTLS:        getEnvBoolOrDefault("MAIL_USE_TLS", true),
		MailUsername:      os.Getenv("MAIL_USERNAME"),
		MailPassword:      os.Getenv("MAIL_PASSWORD"),
		MailDefaultSender: getEnvOrDefault("MAIL_DEFAULT_SENDER", defaultMailSender),
		ContactRecipient:  getEnvOrDefault("CONTACT_RECIPIENT", defaultContactTo),
		AdminPassword:     getEnvOrDefault("BLOG_PASSWORD", defaultAdminPassword),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		GitHubUsername:    getEnvOrDefault("GITHUB_USERNAME", defaultGitHubUser),
		GitHubAPIBaseURL:  getEnvOrDefault("GITHUB_API_URL", defaultGitHubAPIURL),
		TemplatesPath:     getEnvOrDefault("TEMPLATES_PATH", defaultTemplatesPath),
		StaticPath:        getEnvOrDefault("STATIC_PATH", defaultStaticPath),
		Port:              getEnvOrDefault("PORT", "8080"),
		FrontendOrigin:    os.Getenv("FRONTEND_ORIGIN"),
	}

	if cfg.SecretKey == "" {
		return Config{}, fmt.Errorf("SECRET_KEY must not be empty")
	}
	return cfg, nil
}
