package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_LOG_LEVEL tunes the session logger (DEBUG, INFO, WARN, ERROR)
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"ERROR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// Reveal timings are compressed so a full scenario stays fast
	RevealDuration     time.Duration `envconfig:"E2E_REVEAL_DURATION" default:"40ms"`
	RevealTickInterval time.Duration `envconfig:"E2E_REVEAL_TICK_INTERVAL" default:"2ms"`
	BufferSize         int           `envconfig:"E2E_BUFFER_SIZE" default:"128"`
	SinkTimeout        time.Duration `envconfig:"E2E_SINK_TIMEOUT" default:"2s"`
	RestartInterval    time.Duration `envconfig:"E2E_RESTART_INTERVAL" default:"50ms"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
