package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AccessToken   string
	PhoneNumberID string
	AppSecret     string
	VerifyToken   string
	APIVersion    string
	GraphBaseURL  string
	WebhookPath   string
	Port          string

	DMPolicy         string
	AllowFrom        []string
	SendReadReceipts bool

	// AllowInsecureWebhooks permits running without an app secret, skipping
	// signature verification. Development only.
	AllowInsecureWebhooks bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket string
	S3Region string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		AccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		AppSecret:     getEnv("WHATSAPP_APP_SECRET", ""),
		VerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", ""),
		APIVersion:    getEnv("WHATSAPP_API_VERSION", "v19.0"),
		GraphBaseURL:  getEnv("GRAPH_BASE_URL", "https://graph.facebook.com"),
		WebhookPath:   getEnv("WEBHOOK_PATH", "/webhooks/whatsapp"),
		Port:          getEnv("PORT", "8080"),

		DMPolicy:         getEnv("DM_POLICY", "open"),
		AllowFrom:        getEnvList("ALLOW_FROM"),
		SendReadReceipts: getEnvBool("SEND_READ_RECEIPTS", true),

		AllowInsecureWebhooks: getEnvBool("ALLOW_INSECURE_WEBHOOKS", false),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		S3Bucket: getEnv("S3_BUCKET", ""),
		S3Region: getEnv("S3_REGION", "us-east-1"),
	}

	if cfg.AccessToken == "" {
		log.Fatal("WHATSAPP_ACCESS_TOKEN environment variable is required")
	}

	if cfg.PhoneNumberID == "" {
		log.Fatal("WHATSAPP_PHONE_NUMBER_ID environment variable is required")
	}

	if cfg.VerifyToken == "" {
		log.Fatal("WHATSAPP_VERIFY_TOKEN environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var entries []string
	for _, entry := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
