package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do back-office de estoque.
type Config struct {
	// Geral
	Port           string
	Environment    string
	LogLevel       string
	RequestTimeout time.Duration

	// Ledger de estoque
	CollationLocale         string // Idioma usado na ordenação por nome (e.g., "ko")
	DefaultActor            string // Responsável usado quando o cliente não envia X-Actor
	DefaultMinThreshold     int
	RecentTransactionsLimit int
	AlertLimit              int // itens exibidos no painel e no log de alertas

	// Cache (Redis) para o rate limiting
	RedisAddr    string
	CacheTimeout time.Duration

	// Rate Limiting
	RateLimitEnabled     bool
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Alertas de estoque baixo (cron de 5 campos; vazio desativa)
	AlertCron string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) já foi carregado pelo godotenv no main.go.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Port:           v.GetString("PORT"),
		Environment:    v.GetString("ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RequestTimeout: time.Duration(v.GetInt("REQUEST_TIMEOUT_SEC")) * time.Second,

		CollationLocale:         v.GetString("COLLATION_LOCALE"),
		DefaultActor:            v.GetString("DEFAULT_ACTOR"),
		DefaultMinThreshold:     v.GetInt("DEFAULT_MIN_THRESHOLD"),
		RecentTransactionsLimit: v.GetInt("RECENT_TRANSACTIONS_LIMIT"),
		AlertLimit:              v.GetInt("ALERT_LIMIT"),

		RedisAddr:    v.GetString("REDIS_ADDR"),
		CacheTimeout: time.Duration(v.GetInt("CACHE_TIMEOUT_SEC")) * time.Second,

		RateLimitEnabled:     v.GetBool("RATE_LIMIT_ENABLED"),
		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,

		AlertCron: v.GetString("ALERT_CRON"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT_SEC", 10)

	v.SetDefault("COLLATION_LOCALE", "ko")
	v.SetDefault("DEFAULT_ACTOR", "이지한")
	v.SetDefault("DEFAULT_MIN_THRESHOLD", 30)
	v.SetDefault("RECENT_TRANSACTIONS_LIMIT", 15)
	v.SetDefault("ALERT_LIMIT", 3)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_TIMEOUT_SEC", 5)

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)

	v.SetDefault("ALERT_CRON", "0 9 * * *")
}

// Validate rejeita combinações que o ledger não consegue honrar.
func (c *Config) Validate() error {
	if c.DefaultMinThreshold < 0 {
		return fmt.Errorf("DEFAULT_MIN_THRESHOLD não pode ser negativo: %d", c.DefaultMinThreshold)
	}
	if c.RecentTransactionsLimit <= 0 {
		return fmt.Errorf("RECENT_TRANSACTIONS_LIMIT deve ser positivo: %d", c.RecentTransactionsLimit)
	}
	if c.AlertLimit <= 0 {
		return fmt.Errorf("ALERT_LIMIT deve ser positivo: %d", c.AlertLimit)
	}
	if c.RateLimitEnabled && c.RateLimitMaxRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS deve ser positivo quando o rate limit está ativo")
	}
	if strings.TrimSpace(c.DefaultActor) == "" {
		return fmt.Errorf("DEFAULT_ACTOR não pode ser vazio")
	}
	return nil
}
