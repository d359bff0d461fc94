package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBURL    string `envconfig:"DB_URL" required:"true"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`

	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`

	// Schedule for the platform stats refresh job.
	StatsCronSchedule string `envconfig:"STATS_CRON_SCHEDULE" default:"*/15 * * * *"`

	SeedOnStart bool `envconfig:"SEED_ON_START" default:"false"`
}

// C is set by Load and read by the auth middleware and token issuing code.
var C *Config

func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	C = &c
	return C, nil
}
