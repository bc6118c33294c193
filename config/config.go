package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config collects every environment-sourced setting the server needs.
// It is built once in main and handed to the components that use it,
// so nothing reads os.Getenv after startup.
type Config struct {
	Port        string
	DatabaseURL string

	// Set false to run the notification-only variant: the create
	// endpoint skips the database and the admin CRUD routes are
	// not registered.
	PersistenceEnabled bool

	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string
	EmailFrom     string

	AdminEmail string
	AdminPhone string

	// SMS carrier selector: "dummy", "msg91" or "fast2sms".
	// Empty or unrecognized values leave the SMS channel unavailable.
	SMSProvider    string
	SMSSenderID    string
	MSG91APIKey    string
	Fast2SMSAPIKey string

	Development bool
}

// Load reads .env (if present) and assembles the configuration.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}

	return Config{
		Port:               getEnv("PORT", "5000"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		PersistenceEnabled: getEnvBool("PERSISTENCE_ENABLED", true),
		EmailHost:          getEnv("EMAIL_HOST", "localhost"),
		EmailPort:          getEnvInt("EMAIL_PORT", 587),
		EmailUser:          getEnv("EMAIL_USER", ""),
		EmailPassword:      getEnv("EMAIL_PASSWORD", ""),
		EmailFrom:          getEnv("EMAIL_FROM", ""),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		AdminPhone:         getEnv("ADMIN_PHONE", ""),
		SMSProvider:        getEnv("SMS_PROVIDER", ""),
		SMSSenderID:        getEnv("SMS_SENDER_ID", ""),
		MSG91APIKey:        getEnv("MSG91_API_KEY", ""),
		Fast2SMSAPIKey:     getEnv("FAST2SMS_API_KEY", ""),
		Development:        getEnv("APP_ENV", "production") == "development",
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %v", key, value, fallback)
		return fallback
	}
	return b
}
