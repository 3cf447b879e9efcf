package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass), d.Host, d.Port, d.Name)
}

// Routing stores routing/geocoding provider settings.
type Routing struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	ShopLat  float64
	ShopLng  float64
	FocusLat float64
	FocusLng float64
}

// Messaging stores SMS/WhatsApp provider credentials.
type Messaging struct {
	BaseURL      string
	AccountSID   string
	AuthToken    string
	SMSFrom      string
	WhatsAppFrom string
}

// Kafka stores order event consumer settings.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// OrdersGateway stores retry settings for the ordering subsystem client.
type OrdersGateway struct {
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Delivery stores assignment core tunables.
type Delivery struct {
	BaseFee       float64
	PerKmRate     float64
	OfferTTL      time.Duration
	SweepInterval time.Duration
	MaxLoad       int
}

// RateLimit stores HTTP rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug server gate.
type Pprof struct {
	Enabled bool
	Port    int
	User    string
	Pass    string
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Routing   Routing
	Messaging Messaging
	Kafka     Kafka
	Orders    OrdersGateway
	Delivery  Delivery
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Routing:   DefaultRouting(),
		Messaging: DefaultMessaging(),
		Kafka:     DefaultKafka(),
		Orders:    DefaultOrdersGateway(),
		Delivery:  DefaultDelivery(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}

	cfg.DB.Host = envStr("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("POSTGRES_PORT", cfg.DB.Port)
	if _, convErr := strconv.Atoi(cfg.DB.Port); convErr != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT: %q", cfg.DB.Port)
	}
	cfg.DB.User = envStr("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envStr("POSTGRES_DB", cfg.DB.Name)

	cfg.Routing.BaseURL = envStr("ROUTING_BASE_URL", cfg.Routing.BaseURL)
	cfg.Routing.APIKey = envStr("ROUTING_API_KEY", cfg.Routing.APIKey)
	if cfg.Routing.Timeout, err = envDuration("ROUTING_TIMEOUT", cfg.Routing.Timeout); err != nil {
		return nil, err
	}
	if cfg.Routing.ShopLat, err = envFloat("SHOP_LAT", cfg.Routing.ShopLat); err != nil {
		return nil, err
	}
	if cfg.Routing.ShopLng, err = envFloat("SHOP_LNG", cfg.Routing.ShopLng); err != nil {
		return nil, err
	}
	if cfg.Routing.FocusLat, err = envFloat("GEOCODE_FOCUS_LAT", cfg.Routing.FocusLat); err != nil {
		return nil, err
	}
	if cfg.Routing.FocusLng, err = envFloat("GEOCODE_FOCUS_LNG", cfg.Routing.FocusLng); err != nil {
		return nil, err
	}

	cfg.Messaging.BaseURL = envStr("MESSAGING_BASE_URL", cfg.Messaging.BaseURL)
	cfg.Messaging.AccountSID = envStr("MESSAGING_ACCOUNT_SID", cfg.Messaging.AccountSID)
	cfg.Messaging.AuthToken = envStr("MESSAGING_AUTH_TOKEN", cfg.Messaging.AuthToken)
	cfg.Messaging.SMSFrom = envStr("MESSAGING_SMS_FROM", cfg.Messaging.SMSFrom)
	cfg.Messaging.WhatsAppFrom = envStr("MESSAGING_WHATSAPP_FROM", cfg.Messaging.WhatsAppFrom)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.Topic = envStr("KAFKA_ORDERS_TOPIC", cfg.Kafka.Topic)

	cfg.Orders.BaseURL = envStr("ORDERS_BASE_URL", cfg.Orders.BaseURL)

	if cfg.Delivery.BaseFee, err = envFloat("DELIVERY_BASE_FEE", cfg.Delivery.BaseFee); err != nil {
		return nil, err
	}
	if cfg.Delivery.PerKmRate, err = envFloat("DELIVERY_PER_KM_RATE", cfg.Delivery.PerKmRate); err != nil {
		return nil, err
	}
	if cfg.Delivery.OfferTTL, err = envDuration("ASSIGNMENT_OFFER_TTL", cfg.Delivery.OfferTTL); err != nil {
		return nil, err
	}
	if cfg.Delivery.SweepInterval, err = envDuration("ASSIGNMENT_SWEEP_INTERVAL", cfg.Delivery.SweepInterval); err != nil {
		return nil, err
	}
	if cfg.Delivery.MaxLoad, err = envInt("DELIVERY_MAX_LOAD", cfg.Delivery.MaxLoad); err != nil {
		return nil, err
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		cfg.Pprof.Enabled = v == "1" || v == "true"
	}
	cfg.Pprof.User = envStr("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envStr("PPROF_PASS", cfg.Pprof.Pass)
	if cfg.Pprof.Port, err = envInt("PPROF_PORT", cfg.Pprof.Port); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Delivery.OfferTTL <= 0 {
		return nil, fmt.Errorf("invalid offer ttl: %s", cfg.Delivery.OfferTTL)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
