package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database. When DemoMode is true (or no DB host is configured) the
	// application runs against a non-persistent in-memory store seeded
	// with sample data.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DemoMode   bool

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Advice generation
	GeminiAPIKey   string
	GeminiModel    string
	AdviceLanguage string
	AdviceTimeout  time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fintrack"),
		DBPassword: getEnv("DB_PASSWORD", "fintrack"),
		DBName:     getEnv("DB_NAME", "fintrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DemoMode:   getEnv("DEMO_MODE", "") == "true",

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Advice generation
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AdviceLanguage: getEnv("ADVICE_LANGUAGE", "English"),
	}

	// An unset DB host means there is nothing to connect to; fall back to
	// the in-memory demo store rather than failing at startup.
	if config.DBHost == "" {
		config.DemoMode = true
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	adviceTimeoutStr := getEnv("ADVICE_TIMEOUT", "30s")
	adviceTimeout, err := time.ParseDuration(adviceTimeoutStr)
	if err != nil {
		log.Printf("Warning: invalid ADVICE_TIMEOUT value '%s', falling back to 30s\n", adviceTimeoutStr)
		adviceTimeout = 30 * time.Second
	}
	config.AdviceTimeout = adviceTimeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
