package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `env:"ENV" env-default:"local"`
	HTTP HTTP
	DB   DB
	JWT  JWT
}

type HTTP struct {
	Address         string        `env:"HTTP_ADDRESS" env-default:"0.0.0.0:8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

type DB struct {
	URL string `env:"DATABASE_URL" env-required:"true"`
}

type JWT struct {
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	Issuer     string        `env:"JWT_ISSUER" env-default:"surveybasket"`
	Audience   string        `env:"JWT_AUDIENCE" env-default:"surveybasket-api"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" env-default:"336h"`
}

// MustLoad reads configuration from the environment, after loading an
// optional .env file. Missing required values are a startup failure, not
// something the request path ever has to handle.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	if cfg.JWT.SigningKey == "" {
		log.Fatal("JWT_SIGNING_KEY must not be empty")
	}

	return &cfg
}
