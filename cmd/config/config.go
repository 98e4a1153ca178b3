package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

type ReservationConfig struct {
	// Window is how long a reservation holds stock before the cleanup
	// job may release it.
	Window time.Duration
}

type CheckoutConfig struct {
	// SessionTTL bounds how long the checkout session (and its PIX
	// payload) stays readable in Redis.
	SessionTTL time.Duration
	CartTTL    time.Duration
}

type ConfirmationConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

type GatewayConfig struct {
	BaseURL       string
	APIKey        string
	WebhookSecret string
	Timeout       time.Duration
}

type ShippingConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type MailerConfig struct {
	BaseURL     string
	APIKey      string
	FromAddress string
	Timeout     time.Duration
}

type ERPConfig struct {
	BaseURL      string
	RefreshToken string
	Timeout      time.Duration
}

type InternalConfig struct {
	// APIKey guards the cron/consumer-facing endpoints.
	APIKey string
	// BaseURL is where the rabbitmq consumer reaches this service back.
	BaseURL string
}

type Config struct {
	Environment  string
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Auth         AuthConfig
	Reservation  ReservationConfig
	Checkout     CheckoutConfig
	Confirmation ConfirmationConfig
	Gateway      GatewayConfig
	Shipping     ShippingConfig
	Mailer       MailerConfig
	ERP          ERPConfig
	Internal     InternalConfig
}

// Load reads configuration from the environment, optionally seeded by a
// local .env file. Missing values fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout: getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			// must cover the confirmation long-poll (interval * max attempts)
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 45*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "storefront"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
			JWTExpiration:  getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getEnvDuration("SESSION_EXPIRATION", 24*time.Hour),
		},
		Reservation: ReservationConfig{
			Window: getEnvDuration("RESERVATION_WINDOW", 30*time.Minute),
		},
		Checkout: CheckoutConfig{
			SessionTTL: getEnvDuration("CHECKOUT_SESSION_TTL", 2*time.Hour),
			CartTTL:    getEnvDuration("CART_TTL", 72*time.Hour),
		},
		Confirmation: ConfirmationConfig{
			Interval:    getEnvDuration("CONFIRMATION_INTERVAL", 2*time.Second),
			MaxAttempts: getEnvInt("CONFIRMATION_MAX_ATTEMPTS", 15),
		},
		Gateway: GatewayConfig{
			BaseURL:       getEnv("GATEWAY_BASE_URL", ""),
			APIKey:        getEnv("GATEWAY_API_KEY", ""),
			WebhookSecret: getEnv("GATEWAY_WEBHOOK_SECRET", ""),
			Timeout:       getEnvDuration("GATEWAY_TIMEOUT", 10*time.Second),
		},
		Shipping: ShippingConfig{
			BaseURL: getEnv("SHIPPING_BASE_URL", ""),
			APIKey:  getEnv("SHIPPING_API_KEY", ""),
			Timeout: getEnvDuration("SHIPPING_TIMEOUT", 10*time.Second),
		},
		Mailer: MailerConfig{
			BaseURL:     getEnv("MAILER_BASE_URL", ""),
			APIKey:      getEnv("MAILER_API_KEY", ""),
			FromAddress: getEnv("MAILER_FROM", "pedidos@nutrivitta.com.br"),
			Timeout:     getEnvDuration("MAILER_TIMEOUT", 10*time.Second),
		},
		ERP: ERPConfig{
			BaseURL:      getEnv("ERP_BASE_URL", ""),
			RefreshToken: getEnv("ERP_REFRESH_TOKEN", ""),
			Timeout:      getEnvDuration("ERP_TIMEOUT", 10*time.Second),
		},
		Internal: InternalConfig{
			APIKey:  getEnv("INTERNAL_API_KEY", ""),
			BaseURL: getEnv("INTERNAL_BASE_URL", "http://localhost:8080"),
		},
	}
}

// GetDSN builds the MySQL DSN for sqlx
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
