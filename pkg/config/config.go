package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     AppConfig
	Cart    CartConfig
	Amount  AmountConfig
	Catalog CatalogConfig
	Orders  OrdersConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Cart.DeliveryFee.IsNegative() {
		return nil, fmt.Errorf("%s must not be negative", EnvCartDeliveryFee)
	}
	if cfg.Orders.Timeout <= 0 {
		return nil, fmt.Errorf("%s must be positive", EnvOrdersTimeout)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MENUCART_APP_ENV" required:"true"`
	Port         string `envconfig:"MENUCART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MENUCART_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"MENUCART_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"MENUCART_LOG_WARN_STACK" default:"false"`

	// CORSOrigins lists the sites allowed to embed the ordering widget.
	CORSOrigins []string `envconfig:"MENUCART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CartConfig struct {
	DeliveryFee decimal.Decimal `envconfig:"MENUCART_CART_DELIVERY_FEE" default:"20"`
}

// AmountConfig bounds every quantity control, on menu cards and cart lines alike.
type AmountConfig struct {
	Min     int `envconfig:"MENUCART_AMOUNT_MIN" default:"1"`
	Max     int `envconfig:"MENUCART_AMOUNT_MAX" default:"9"`
	Default int `envconfig:"MENUCART_AMOUNT_DEFAULT" default:"1"`
}

type CatalogConfig struct {
	Path string `envconfig:"MENUCART_CATALOG_PATH" default:"catalog.json"`
}

type OrdersConfig struct {
	URL     string        `envconfig:"MENUCART_ORDERS_URL"`
	Timeout time.Duration `envconfig:"MENUCART_ORDERS_TIMEOUT" default:"10s"`
}

// SubmissionEnabled reports whether orders are forwarded to an order endpoint.
func (o OrdersConfig) SubmissionEnabled() bool {
	return strings.TrimSpace(o.URL) != ""
}

type RedisConfig struct {
	URL            string        `envconfig:"MENUCART_REDIS_URL"`
	Address        string        `envconfig:"MENUCART_REDIS_ADDR"`
	Password       string        `envconfig:"MENUCART_REDIS_PASSWORD"`
	DB             int           `envconfig:"MENUCART_REDIS_DB" default:"0"`
	PoolSize       int           `envconfig:"MENUCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns   int           `envconfig:"MENUCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout    time.Duration `envconfig:"MENUCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout    time.Duration `envconfig:"MENUCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout   time.Duration `envconfig:"MENUCART_REDIS_WRITE_TIMEOUT" default:"5s"`
	IdempotencyTTL time.Duration `envconfig:"MENUCART_REDIS_IDEMPOTENCY_TTL" default:"24h"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
