package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	// Store selects the participation store backend: "memory" for a single
	// instance, "redis" when state must survive restarts or be shared.
	Store struct {
		Backend string `env:"STORE_BACKEND" envDefault:"memory"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Messenger struct {
		AccessToken string `env:"PAGE_ACCESS_TOKEN,required"`
		SendURL     string `env:"SEND_MESSAGE_URL" envDefault:"https://graph.facebook.com/v17.0/me/messages"`
	}

	Game struct {
		// OpenHour is the local hour (0-23) from which draws are accepted.
		OpenHour int    `env:"OPEN_HOUR" envDefault:"8"`
		Timezone string `env:"TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`

		// PrizesPath optionally points to a JSON catalog file. When empty the
		// built-in promotion catalog is used.
		PrizesPath string `env:"PRIZES_PATH" envDefault:""`

		// PendingTTL bounds how long a drawn-but-unconfirmed prize is held.
		PendingTTL time.Duration `env:"PENDING_TTL" envDefault:"10m"`
	}
}

func Load() *Config {
	// A missing .env file is fine; in production the variables are set
	// directly in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
