package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string

	JWTKey      string
	AuthEnabled bool // gate /api behind bearer tokens when true

	EmailSender string
	Password    string // SMTP App Password
	SMTPHost    string
	SMTPPort    string

	UploadDir string // where document uploads are stored

	PayLinkApiURL string // payment link gateway base URL, empty disables the client
	PayLinkApiKey string

	SeedDB bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "assetivo"),

		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		AuthEnabled: getEnvBool("AUTH_ENABLED", false),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		PayLinkApiURL: getEnv("PAYLINK_API_URL", ""),
		PayLinkApiKey: getEnv("PAYLINK_API_KEY", ""),

		SeedDB: getEnvBool("SEED_DB", false),
	}

	// Validate critical configuration
	if AppConfig.AuthEnabled && AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
