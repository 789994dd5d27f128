package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	AppName string
	Version string
	Port    string

	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	DBMaxOpenConns int
	DBMaxIdleConns int

	JWTKey string

	// Fixed OTP used by the mocked auth flow. Real OTP delivery is out of
	// scope; the code is echoed back to the caller as debug_otp.
	OTPCode string

	// Payment gateway settings. Provider "mock" short-circuits every charge
	// to success without a network call.
	PaymentProvider string
	PaymentBaseURL  string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		AppName: "EdTech Platform API",
		Version: "1.0",
		Port:    getEnv("PORT", "8000"),

		DBHost:         getEnv("DB_HOST", "localhost"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "edtech"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		OTPCode: getEnv("MOCK_OTP_CODE", "123456"),

		PaymentProvider: getEnv("PAYMENT_PROVIDER", "mock"),
		PaymentBaseURL:  getEnv("PAYMENT_BASE_URL", "https://api.sandbox.credpay.io/v1"),
	}

	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
