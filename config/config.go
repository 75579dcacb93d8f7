// Package config loads viewer settings from an optional TOML file with
// environment overrides. A missing file is not an error: defaults describe
// a playable viewer out of the box.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved viewer configuration
type Config struct {
	TickInterval     time.Duration
	MoveSpeed        float64 // world units per second
	MouseSensitivity float64 // radians per cell of pointer travel
	KeyHold          time.Duration
	Beta             float64 // initial speed ratio
	ScenePath        string  // empty selects the built-in scene
	LogFile          string
	LogLevel         string
	AudioEnabled     bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tickMs", 16)
	v.SetDefault("moveSpeed", 6.0)
	v.SetDefault("mouseSensitivity", 0.04)
	v.SetDefault("keyHoldMs", 150)
	v.SetDefault("beta", 0.0)
	v.SetDefault("scene", "")
	v.SetDefault("log.file", "lightdrift.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("audio.enabled", true)
}

// Load reads lightdrift.toml from dir, falling back to defaults when the
// file is absent. LIGHTDRIFT_* environment variables override both
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("lightdrift")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("lightdrift")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		TickInterval:     time.Duration(v.GetInt("tickMs")) * time.Millisecond,
		MoveSpeed:        v.GetFloat64("moveSpeed"),
		MouseSensitivity: v.GetFloat64("mouseSensitivity"),
		KeyHold:          time.Duration(v.GetInt("keyHoldMs")) * time.Millisecond,
		Beta:             v.GetFloat64("beta"),
		ScenePath:        v.GetString("scene"),
		LogFile:          v.GetString("log.file"),
		LogLevel:         v.GetString("log.level"),
		AudioEnabled:     v.GetBool("audio.enabled"),
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tickMs must be positive, got %v", cfg.TickInterval)
	}
	if cfg.MoveSpeed < 0 {
		return Config{}, fmt.Errorf("moveSpeed must not be negative, got %v", cfg.MoveSpeed)
	}
	return cfg, nil
}
