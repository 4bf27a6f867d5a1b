package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs. It is built once at startup
// and passed by injection; nothing reads the environment after Load.
type Config struct {
	App  AppConfig
	Mail MailConfig
}

// AppConfig holds server-level configuration.
type AppConfig struct {
	Port      string
	StaticDir string
}

// MailConfig holds the outbound mail transport configuration.
type MailConfig struct {
	Provider string // "smtp", "sendgrid" or "console"
	From     string
	To       string

	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string

	SendGridAPIKey   string
	SendGridFromName string
}

// Load reads configuration from the environment, honoring a .env file
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Port:      getEnv("PORT", "3000"),
			StaticDir: getEnv("STATIC_DIR", "web/static"),
		},
		Mail: MailConfig{
			Provider:         getEnv("MAIL_PROVIDER", "smtp"),
			From:             getEnv("MAIL_FROM", ""),
			To:               getEnv("MAIL_TO", "contact@skilleat.com"),
			SMTPHost:         getEnv("SMTP_HOST", ""),
			SMTPPort:         getEnvAsInt("SMTP_PORT", 587),
			SMTPSecure:       getEnvAsBool("SMTP_SECURE", false),
			SMTPUser:         getEnv("SMTP_USER", ""),
			SMTPPass:         getEnv("SMTP_PASS", ""),
			SendGridAPIKey:   getEnv("SENDGRID_API_KEY", ""),
			SendGridFromName: getEnv("SENDGRID_FROM_NAME", "Skilleat"),
		},
	}
}

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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
