package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment with
// an optional .env file.
type Config struct {
	ListenAddr string
	DBPath     string
	LogLevel   string

	// Staff dashboard credentials. A placeholder credential check, not a
	// security boundary.
	AdminUser     string
	AdminPassword string

	// Outbound order notification channels; each is optional.
	WhatsAppPhone  string
	TelegramToken  string
	TelegramChatID int64
	PostmarkToken  string
	AlertEmailFrom string
	AlertEmailTo   string

	// VAPID keys for admin web push. Push is disabled when unset.
	VAPIDPublicKey  string
	VAPIDPrivateKey string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	chatID, _ := strconv.ParseInt(os.Getenv("DHABA_TELEGRAM_CHAT_ID"), 10, 64)

	return &Config{
		ListenAddr:      getEnv("DHABA_LISTEN_ADDR", ":8080"),
		DBPath:          getEnv("DHABA_DB_PATH", "dhaba.db"),
		LogLevel:        getEnv("DHABA_LOG_LEVEL", "info"),
		AdminUser:       getEnv("DHABA_ADMIN_USER", "admin"),
		AdminPassword:   getEnv("DHABA_ADMIN_PASSWORD", "admin123"),
		WhatsAppPhone:   getEnv("DHABA_WHATSAPP_PHONE", ""),
		TelegramToken:   getEnv("DHABA_TELEGRAM_TOKEN", ""),
		TelegramChatID:  chatID,
		PostmarkToken:   getEnv("DHABA_POSTMARK_TOKEN", ""),
		AlertEmailFrom:  getEnv("DHABA_ALERT_EMAIL_FROM", ""),
		AlertEmailTo:    getEnv("DHABA_ALERT_EMAIL_TO", ""),
		VAPIDPublicKey:  getEnv("DHABA_VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey: getEnv("DHABA_VAPID_PRIVATE_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
