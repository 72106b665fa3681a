package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type Upload struct {
	// Backend selects where uploaded images live: "local" (uploads
	// directory served under /uploads) or "minio".
	Backend     string
	Dir         string
	MaxFileSize int64
	MaxFiles    int
}

type Config struct {
	ServerPort int
	DB         DB
	SMTP       SMTP
	MinIO      MinIO
	Upload     Upload

	JWTSecretKey  string
	TokenDuration time.Duration

	// AdminEmail identifies the single administrative account; the OTP
	// itself is delivered to OTPNotifyEmail.
	AdminEmail     string
	OTPNotifyEmail string
	// CompanyEmail receives contact-form notifications.
	CompanyEmail string

	CORSOrigins []string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func LoadDB() DB {
	return DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "password"),
		Name:     getEnv("DB_NAME", "constructsite"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadSMTP() SMTP {
	return SMTP{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnvAsInt("SMTP_PORT", 587),
		Username: getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASS", ""),
		From:     getEnv("MAIL_FROM", ""),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		Bucket:    getEnv("MINIO_BUCKET_NAME", "uploads"),
		UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		PublicURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadUpload() Upload {
	return Upload{
		Backend:     getEnv("UPLOAD_BACKEND", "local"),
		Dir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
		MaxFiles:    getEnvAsInt("MAX_UPLOAD_FILES", 10),
	}
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 5001),
		DB:              LoadDB(),
		SMTP:            LoadSMTP(),
		MinIO:           LoadMinIO(),
		Upload:          LoadUpload(),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", ""),
		TokenDuration:   getEnvAsDuration("TOKEN_DURATION", 7*24*time.Hour),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		OTPNotifyEmail:  getEnv("OTP_NOTIFY_EMAIL", ""),
		CompanyEmail:    getEnv("COMPANY_EMAIL", ""),
		CORSOrigins:     getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX", 5),
	}
}
