package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string `env:"PORT" env-default:"8080"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `env:"DB_DRIVER" env-default:"sqlite"`
	DSN    string `env:"DB_DSN" env-default:"taskboard.sqlite"`
}

type RedisConfig struct {
	// Addr empty means no redis; token revocation falls back to the
	// in-memory store.
	Addr     string `env:"REDIS_ADDR" env-default:""`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET" env-default:"devsecret"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	AdminUsername string        `env:"ADMIN_USERNAME" env-default:"admin"`
	AdminEmail    string        `env:"ADMIN_EMAIL" env-default:"admin@localhost"`
	AdminPassword string        `env:"ADMIN_PASSWORD" env-default:""`

	LoginWindow      time.Duration `env:"LOGIN_RATE_WINDOW" env-default:"1m"`
	LoginMaxAttempts int           `env:"LOGIN_RATE_MAX_ATTEMPTS" env-default:"10"`
}

func MustLoad() *Config {
	_ = godotenv.Load() // ignore error if no .env

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config not read: %v", err)
	}
	return &cfg
}
