package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, tokens), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	WhatsApp WhatsAppConfig
	Payments PaymentsConfig
	Mail     MailConfig
	State    StateConfig
	Sweeper  SweeperConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type WhatsAppConfig struct {
	APIBaseURL  string        `envconfig:"WHATSAPP_API_BASE_URL" default:"https://graph.facebook.com/v20.0"`
	AccessToken string        `envconfig:"WHATSAPP_ACCESS_TOKEN" required:"true"`
	VerifyToken string        `envconfig:"WHATSAPP_VERIFY_TOKEN" required:"true"`
	Timeout     time.Duration `envconfig:"WHATSAPP_TIMEOUT" default:"10s"`
}

type PaymentsConfig struct {
	// YAML file listing providers and amount tiers per owner (see payments.example.yaml)
	TiersFile          string        `envconfig:"PAYMENTS_CONFIG" default:"payments.yaml"`
	MercadoPagoBaseURL string        `envconfig:"MERCADOPAGO_BASE_URL" default:"https://api.mercadopago.com"`
	MercadoPagoToken   string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	ChargeExpiry       time.Duration `envconfig:"PAYMENTS_CHARGE_EXPIRY" default:"30m"`
	Timeout            time.Duration `envconfig:"PAYMENTS_TIMEOUT" default:"15s"`
	// Pix charges require a payer email; WhatsApp customers have none
	PayerEmail         string        `envconfig:"MERCADOPAGO_PAYER_EMAIL" default:"pagamentos@shopbot.local"`
}

type MailConfig struct {
	Enabled  bool   `envconfig:"MAIL_ENABLED" default:"false"`
	Host     string `envconfig:"MAIL_SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"MAIL_SMTP_PORT" default:"587"`
	Username string `envconfig:"MAIL_SMTP_USERNAME"`
	Password string `envconfig:"MAIL_SMTP_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"shopbot@localhost"`
	// tls | starttls | none
	Security string `envconfig:"MAIL_SMTP_SECURITY" default:"starttls"`
}

type StateConfig struct {
	// postgres | dynamodb
	Backend       string `envconfig:"STATE_BACKEND" default:"postgres"`
	DynamoTable   string `envconfig:"STATE_DYNAMO_TABLE" default:"shopbot-conversations"`
	AWSRegion     string `envconfig:"AWS_REGION" default:"us-east-1"`
	DynamoBaseURL string `envconfig:"STATE_DYNAMO_ENDPOINT"`
}

type SweeperConfig struct {
	Enabled        bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Schedule       string        `envconfig:"SWEEPER_SCHEDULE" default:"@every 5m"`
	PendingFlowTTL time.Duration `envconfig:"PENDING_FLOW_TTL" default:"30m"`
	InboundDedupe  time.Duration `envconfig:"INBOUND_DEDUPE_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		WhatsApp: WhatsAppConfig{
			APIBaseURL:  "http://localhost:18080",
			AccessToken: "test-token",
			VerifyToken: "test-verify",
			Timeout:     time.Second,
		},
		Payments: PaymentsConfig{
			MercadoPagoBaseURL: "http://localhost:18081",
			ChargeExpiry:       30 * time.Minute,
			Timeout:            time.Second,
		},
		State: StateConfig{
			Backend: "postgres",
		},
		Sweeper: SweeperConfig{
			Enabled:        false,
			Schedule:       "@every 5m",
			PendingFlowTTL: 30 * time.Minute,
			InboundDedupe:  24 * time.Hour,
		},
	}
}
