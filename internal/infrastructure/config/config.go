package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// BcryptCost tunes the adaptive hashing cost. The default keeps a single
	// hash in the tens-of-milliseconds range; raise it as hardware improves.
	BcryptCost int `env:"BCRYPT_COST, default=10"`

	// AuditWorkers is the number of sharded audit pipeline workers.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	SQLite SQLiteConfig
	Redis  RedisConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=accounts.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`

	// LoginLimit caps login attempts per client address per minute.
	LoginLimit int `env:"LOGIN_RATE_LIMIT, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
