package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
	CookieName string        `env:"COOKIE_NAME, default=session_token"`

	// AllowSelfRole lets anyone pick a role at registration. Meant for
	// demo installs only; in production roles require an admin session.
	AllowSelfRole bool `env:"ALLOW_SELF_ROLE, default=false"`
	SeedDemoData  bool `env:"SEED_DEMO_DATA,  default=false"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	UploadDir     string `env:"UPLOAD_DIR, default=./static/uploads"`
	MaxUploadSize string `env:"MAX_UPLOAD_SIZE, default=5M"`

	Mongo MongoConfig
	Redis RedisConfig
}

// Production reports whether the service runs with production hardening
// (secure cross-site cookies).
func (c *Config) Production() bool {
	return c.Env == "production"
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=masters_catalog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
