// Пакет config — конфигурация сервиса из переменных окружения.
// Значения по умолчанию заданы тегами; любой параметр переопределяется
// переменной с префиксом MARKET (например, MARKET_HTTP_ADDR).
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"campus-market" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Remote — адреса потребляемых сервисов витрины.
type Remote struct {
	CartURL     string        `default:"http://cart:8081" envconfig:"CART_URL"`
	WishlistURL string        `default:"http://wishlist:8082" envconfig:"WISHLIST_URL"`
	SearchURL   string        `default:"http://search:8083" envconfig:"SEARCH_URL"`
	BankURL     string        `default:"http://bank:8084" envconfig:"BANK_URL"`
	PaymentURL  string        `default:"http://payment:8085" envconfig:"PAYMENT_URL"`
	Timeout     time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

// Cache — TTL слотов ответов. Ноль выключает соответствующий слот.
type Cache struct {
	WishlistTTL   time.Duration `default:"2m" envconfig:"WISHLIST_TTL"`
	CategoriesTTL time.Duration `default:"5m" envconfig:"CATEGORIES_TTL"`
	BanksTTL      time.Duration `default:"5m" envconfig:"BANKS_TTL"`
}

// Search — параметры дебаунса и пагинации поиска.
type Search struct {
	QuietPeriod time.Duration `default:"150ms" envconfig:"QUIET_PERIOD"`
	PageSize    int           `default:"20" envconfig:"PAGE_SIZE"`
	MaxPageSize int           `default:"100" envconfig:"MAX_PAGE_SIZE"`
}

// Bank — параметры проверки реквизитов.
type Bank struct {
	ResolveCooldown time.Duration `default:"5s" envconfig:"RESOLVE_COOLDOWN"`
	Currency        string        `default:"NGN" envconfig:"CURRENCY"`
}

// Fees — комиссия платёжного шлюза (в мажорных единицах валюты).
type Fees struct {
	Rate          float64 `default:"0.015" envconfig:"RATE"`
	Flat          float64 `default:"100" envconfig:"FLAT"`
	FlatThreshold float64 `default:"2500" envconfig:"FLAT_THRESHOLD"`
	Cap           float64 `default:"2000" envconfig:"CAP"`
}

// Session — жизненный цикл сессионных контейнеров.
type Session struct {
	IdleTTL       time.Duration `default:"30m" envconfig:"IDLE_TTL"`
	SweepInterval time.Duration `default:"5m" envconfig:"SWEEP_INTERVAL"`
}

type Config struct {
	HTTP    HTTP
	Metrics Metrics
	Tracing Tracing
	Logger  Logger
	Remote  Remote
	Cache   Cache
	Search  Search
	Bank    Bank
	Fees    Fees
	Session Session
}

// Load — конфигурация с боевым префиксом MARKET.
func Load() (Config, error) {
	return LoadWithPrefix("MARKET")
}

// LoadWithPrefix — загрузка с произвольным префиксом; тесты используют
// уникальные префиксы, чтобы не конфликтовать по окружению.
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
