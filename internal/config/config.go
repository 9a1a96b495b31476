package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	MailSMTP     = "smtp"
	MailSendGrid = "sendgrid"
)

var ErrMissingAdminToken = errors.New("ADMIN_TOKEN is required")

type Config struct {
	AppEnv   string
	HTTPAddr string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string

	AMQPURL        string
	LocalQueueSize int

	AdminToken        string
	AdminEmail        string
	AdminUsername     string
	AdminPasswordHash string

	MailProvider    string
	MailFrom        string
	MailFromName    string
	NotifyRecipient string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
	SendGridAPIKey  string

	RedisAddr       string
	RedisPassword   string
	RateLimit       int
	RateLimitWindow time.Duration
	// TrustProxy keys the intake limiter on X-Forwarded-For / X-Real-IP.
	// Leave it off unless a reverse proxy overwrites those headers.
	TrustProxy bool

	AllowedOrigins []string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MailEnabled reports whether the selected provider has credentials.
func (c Config) MailEnabled() bool {
	if c.NotifyRecipient == "" {
		return false
	}
	switch c.MailProvider {
	case MailSendGrid:
		return c.SendGridAPIKey != ""
	default:
		return c.SMTPHost != ""
	}
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("app_env", "development")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("store_driver", StoreMongo)
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "admissions")
	v.SetDefault("local_queue_size", 100)
	v.SetDefault("mail_provider", MailSMTP)
	v.SetDefault("mail_from", "noreply@localhost")
	v.SetDefault("mail_from_name", "Admissions")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("rate_limit", 10)
	v.SetDefault("rate_limit_window", time.Minute)
	v.SetDefault("trust_proxy", false)
	v.SetDefault("allowed_origins", "*")
	v.AutomaticEnv()

	cfg := &Config{
		AppEnv:   strings.ToLower(v.GetString("app_env")),
		HTTPAddr: v.GetString("http_addr"),

		StoreDriver:   strings.ToLower(v.GetString("store_driver")),
		MongoURI:      v.GetString("mongo_uri"),
		MongoDatabase: v.GetString("mongo_database"),
		DatabaseURL:   v.GetString("database_url"),

		AMQPURL:        v.GetString("amqp_url"),
		LocalQueueSize: v.GetInt("local_queue_size"),

		AdminToken:        v.GetString("admin_token"),
		AdminEmail:        v.GetString("admin_email"),
		AdminUsername:     v.GetString("admin_username"),
		AdminPasswordHash: v.GetString("admin_password_hash"),

		MailProvider:    strings.ToLower(v.GetString("mail_provider")),
		MailFrom:        v.GetString("mail_from"),
		MailFromName:    v.GetString("mail_from_name"),
		NotifyRecipient: v.GetString("notify_recipient"),
		SMTPHost:        v.GetString("smtp_host"),
		SMTPPort:        v.GetInt("smtp_port"),
		SMTPUser:        v.GetString("smtp_user"),
		SMTPPassword:    v.GetString("smtp_password"),
		SendGridAPIKey:  v.GetString("sendgrid_api_key"),

		RedisAddr:       v.GetString("redis_addr"),
		RedisPassword:   v.GetString("redis_password"),
		RateLimit:       v.GetInt("rate_limit"),
		RateLimitWindow: v.GetDuration("rate_limit_window"),
		TrustProxy:      v.GetBool("trust_proxy"),

		AllowedOrigins: splitList(v.GetString("allowed_origins")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.AdminToken == "" {
		return ErrMissingAdminToken
	}
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.MailProvider {
	case MailSMTP, MailSendGrid:
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.MailProvider)
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
