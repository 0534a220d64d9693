package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseJWTSecret string
	PublicBaseURL     string
	// SMTP Configuration (Brevo)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	NotifyEmailTo string // recruiting team inbox that receives response notifications
	// Slack webhook for response notifications
	SlackWebhookURL string
	// Redis/Upstash Configuration (shared rate-limit counters)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	AcceptRateLimit        int
	DeclineRateLimit       int
	InquiryRateLimit       int
	// Security Configuration
	SecurityLogToDB bool // persist security events to the activity log
}

func LoadConfig() (*Config, error) {
	// .env only exists locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		// Trailing slash would produce double slashes in offer links
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@outreach.local"),
		NotifyEmailTo: getEnv("NOTIFY_EMAIL_TO", ""),
		// Slack
		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (per caller IP, per window)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		AcceptRateLimit:        getEnvInt("RATE_LIMIT_ACCEPT_THRESHOLD", 3),
		DeclineRateLimit:       getEnvInt("RATE_LIMIT_DECLINE_THRESHOLD", 5),
		InquiryRateLimit:       getEnvInt("RATE_LIMIT_INQUIRY_THRESHOLD", 3),
		// Security Configuration
		SecurityLogToDB: getEnvBool("SECURITY_LOG_TO_DB", true),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SlackWebhookURL == "" {
		log.Println("WARNING: SLACK_WEBHOOK_URL not configured. Chat notifications will be skipped.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
