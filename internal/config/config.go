package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	StorageBackend string        `mapstructure:"STORAGE_BACKEND"` // "postgres" | "memory"
	SessionBackend string        `mapstructure:"SESSION_BACKEND"` // "postgres" | "redis" | "memory"
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	RedisURL       string        `mapstructure:"REDIS_URL"`
	NATSURL        string        `mapstructure:"NATS_URL"`

	TelegramToken         string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIURL        string `mapstructure:"TELEGRAM_API_URL"`
	TelegramWebhookSecret string `mapstructure:"TELEGRAM_WEBHOOK_SECRET"`
	AdminChatID           string `mapstructure:"ADMIN_CHAT_ID"`

	AIProvider      string        `mapstructure:"AI_PROVIDER"` // "openai" | "gemini"
	OpenAIKey       string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel     string        `mapstructure:"OPENAI_MODEL"`
	GoogleAPIKey    string        `mapstructure:"GOOGLE_API_KEY"`
	GeminiModel     string        `mapstructure:"GEMINI_MODEL"`
	AITimeout       time.Duration `mapstructure:"AI_TIMEOUT"`
	AIRatePerMinute int           `mapstructure:"AI_RATE_PER_MINUTE"`

	ClinicTimezone   string `mapstructure:"CLINIC_TIMEZONE"`
	SlotHours        string `mapstructure:"SLOT_HOURS"`
	SlotHorizonDays  int    `mapstructure:"SLOT_HORIZON_DAYS"`
	SlotListLimit    int    `mapstructure:"SLOT_LIST_LIMIT"`
	ReminderSchedule string `mapstructure:"REMINDER_SCHEDULE"`
	TaskSecret       string `mapstructure:"TASK_SECRET"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"DATABASE_URL", "STORAGE_BACKEND", "SESSION_BACKEND", "SESSION_TTL", "REDIS_URL", "NATS_URL",
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_API_URL", "TELEGRAM_WEBHOOK_SECRET", "ADMIN_CHAT_ID",
	"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "GOOGLE_API_KEY", "GEMINI_MODEL", "AI_TIMEOUT", "AI_RATE_PER_MINUTE",
	"CLINIC_TIMEZONE", "SLOT_HOURS", "SLOT_HORIZON_DAYS", "SLOT_LIST_LIMIT", "REMINDER_SCHEDULE", "TASK_SECRET",
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", "postgres")
	v.SetDefault("SESSION_BACKEND", "postgres")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	v.SetDefault("AI_PROVIDER", "gemini")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_TIMEOUT", 30*time.Second)
	v.SetDefault("AI_RATE_PER_MINUTE", 6)
	v.SetDefault("CLINIC_TIMEZONE", "Asia/Dubai")
	v.SetDefault("SLOT_HOURS", "10,12,14,16,18,20")
	v.SetDefault("SLOT_HORIZON_DAYS", 7)
	v.SetDefault("SLOT_LIST_LIMIT", 10)
	v.SetDefault("REMINDER_SCHEDULE", "@every 15m")

	// AutomaticEnv only resolves keys viper already knows about.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := cfg.validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location returns the clinic timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.ClinicTimezone)
}

// Hours parses SLOT_HOURS ("10,12,14") into a sorted-as-given hour list.
func (c *Config) Hours() ([]int, error) {
	return ParseHours(c.SlotHours)
}

func ParseHours(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		h, err := strconv.Atoi(part)
		if err != nil || h < 0 || h > 23 {
			return nil, &InvalidError{Key: "SLOT_HOURS", Value: s}
		}
		out = append(out, h)
	}
	if len(out) == 0 {
		return nil, &InvalidError{Key: "SLOT_HOURS", Value: s}
	}
	return out, nil
}

type InvalidError struct {
	Key   string
	Value string
}

func (e *InvalidError) Error() string {
	if e.Value == "" {
		return e.Key + " is not set"
	}
	return e.Key + " has invalid value " + strconv.Quote(e.Value)
}

func (c *Config) validate() error {
	if c.TelegramToken == "" {
		return &InvalidError{Key: "TELEGRAM_BOT_TOKEN"}
	}
	switch c.AIProvider {
	case "openai":
		if c.OpenAIKey == "" {
			return &InvalidError{Key: "OPENAI_API_KEY"}
		}
	case "gemini":
		if c.GoogleAPIKey == "" {
			return &InvalidError{Key: "GOOGLE_API_KEY"}
		}
	default:
		return &InvalidError{Key: "AI_PROVIDER", Value: c.AIProvider}
	}
	if (c.StorageBackend == "postgres" || c.SessionBackend == "postgres") && c.DatabaseURL == "" {
		return &InvalidError{Key: "DATABASE_URL"}
	}
	if _, err := c.Hours(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return &InvalidError{Key: "CLINIC_TIMEZONE", Value: c.ClinicTimezone}
	}
	return nil
}
