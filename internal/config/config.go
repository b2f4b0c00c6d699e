// Package config loads the demo host configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the host configuration.
type Config struct {
	Log       LogConfig      `mapstructure:"log"`
	Tooltip   HoverConfig    `mapstructure:"tooltip"`
	HoverCard HoverConfig    `mapstructure:"hover_card"`
	Snapshot  SnapshotConfig `mapstructure:"snapshot"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level         string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	HumanReadable bool   `mapstructure:"human_readable"`
}

// HoverConfig holds the delays of a hover-driven overlay.
type HoverConfig struct {
	OpenDelay  time.Duration `mapstructure:"open_delay" validate:"min=0s,max=10s"`
	CloseDelay time.Duration `mapstructure:"close_delay" validate:"min=0s,max=10s"`
	SkipDelay  time.Duration `mapstructure:"skip_delay" validate:"min=0s,max=10s"`
}

// SnapshotConfig says where and how widget snapshots are stored.
type SnapshotConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=json yaml"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// DefaultPath is the config file read when none is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "headless", "config.yaml")
}

// Load reads configuration from path, or from HEADLESS_CONFIG, or from
// DefaultPath. A missing default file is not an error; a missing explicit
// one is. Env var overrides use prefix HEADLESS_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.human_readable", true)
	v.SetDefault("tooltip.open_delay", "700ms")
	v.SetDefault("tooltip.close_delay", "0s")
	v.SetDefault("tooltip.skip_delay", "300ms")
	v.SetDefault("hover_card.open_delay", "700ms")
	v.SetDefault("hover_card.close_delay", "300ms")
	v.SetDefault("hover_card.skip_delay", "0s")
	v.SetDefault("snapshot.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "headless", "snapshots"))
	v.SetDefault("snapshot.format", "json")

	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("HEADLESS_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("HEADLESS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints.
func Validate(c Config) error {
	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s: failed %q (value %v)", strings.ToLower(fe.Namespace()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
