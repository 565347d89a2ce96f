package config

const (
	EnvPrefix = "MENUCART"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv          = "MENUCART_APP_ENV"
	EnvPort            = "MENUCART_APP_PORT"
	EnvLogLevel        = "MENUCART_LOG_LEVEL"
	EnvLogFormat       = "MENUCART_LOG_FORMAT"
	EnvCORSOrigins     = "MENUCART_CORS_ALLOWED_ORIGINS"
	EnvCartDeliveryFee = "MENUCART_CART_DELIVERY_FEE"
	EnvAmountMin       = "MENUCART_AMOUNT_MIN"
	EnvAmountMax       = "MENUCART_AMOUNT_MAX"
	EnvAmountDefault   = "MENUCART_AMOUNT_DEFAULT"
	EnvCatalogPath     = "MENUCART_CATALOG_PATH"
	EnvOrdersURL       = "MENUCART_ORDERS_URL"
	EnvOrdersTimeout   = "MENUCART_ORDERS_TIMEOUT"
	EnvRedisURL        = "MENUCART_REDIS_URL"
	EnvRedisAddr       = "MENUCART_REDIS_ADDR"
)
