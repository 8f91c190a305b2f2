package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the environment-driven configuration of the tool. Every
// knob has a sensible default so a plain `draw-lab` invocation works
// without any environment at all.
type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	// BadgerFilepath is empty by default: the roster lives in an
	// in-memory BadgerDB and dies with the session. Pointing it at a
	// directory enables the roster_inspect debug tool.
	BadgerFilepath string `env:"BADGER_FILEPATH"`

	BufferSize  int           `env:"BUFFER_SIZE,default=128" validate:"gt=0"`
	SinkTimeout time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`

	// The reveal phase runs RevealDuration / RevealTickInterval ticks.
	RevealDuration     time.Duration `env:"REVEAL_DURATION,default=2s" validate:"gt=0"`
	RevealTickInterval time.Duration `env:"REVEAL_TICK_INTERVAL,default=50ms" validate:"gt=0"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`

	DedupeOnImport     bool `env:"DEDUPE_ON_IMPORT,default=true"`
	AllowRepeatWinners bool `env:"ALLOW_REPEAT_WINNERS,default=false"`
}

// Validate enforces the numeric constraints go-env cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.RevealTickInterval > c.RevealDuration {
		return fmt.Errorf("invalid configuration: REVEAL_TICK_INTERVAL %s exceeds REVEAL_DURATION %s",
			c.RevealTickInterval, c.RevealDuration)
	}
	return nil
}
