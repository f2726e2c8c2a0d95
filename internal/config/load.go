package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Beebek-Sharma/pacsync/internal/constants"
	"github.com/Beebek-Sharma/pacsync/internal/errors"
)

// newViperInstance creates a Viper instance with defaults, the PACSYNC_
// environment prefix and a key replacer so retry.attempts maps to
// PACSYNC_RETRY_ATTEMPTS.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("username", d.Username)
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("timeout", d.Timeout.String())
	v.SetDefault("retry.attempts", d.Retry.Attempts)
	v.SetDefault("retry.delay", d.Retry.Delay.String())
	v.SetDefault("paths.light", d.Paths.Light)
	v.SetDefault("paths.dark", d.Paths.Dark)
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption configures mapstructure to decode "15s" style strings
// into time.Duration.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("username", cfg.Username).
		Str("endpoint", cfg.Endpoint).
		Dur("timeout", cfg.Timeout).
		Int("retry.attempts", cfg.Retry.Attempts).
		Dur("retry.delay", cfg.Retry.Delay).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Missing config files are not an error; most runs use the defaults.
func Load(ctx context.Context) (*Config, error) {
	globalPath := ""
	if p, err := GlobalConfigPath(); err == nil && fileExists(p) {
		globalPath = p
	}

	projectPath := ""
	if p := ProjectConfigPath(); fileExists(p) {
		projectPath = p
	}

	return LoadFromPaths(ctx, projectPath, globalPath)
}

// LoadFromPaths loads configuration from specific file paths.
// Either path can be empty to skip that level. The project file is merged
// over the global one.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied. A zero retry delay cannot be
// expressed this way; callers set it on the result when the flag was given.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// applyOverrides merges non-zero override values into the config.
func applyOverrides(cfg, overrides *Config) {
	if overrides.Username != "" {
		cfg.Username = overrides.Username
	}
	if overrides.Endpoint != "" {
		cfg.Endpoint = overrides.Endpoint
	}
	if overrides.Timeout != 0 {
		cfg.Timeout = overrides.Timeout
	}
	if overrides.Retry.Attempts != 0 {
		cfg.Retry.Attempts = overrides.Retry.Attempts
	}
	if overrides.Retry.Delay != 0 {
		cfg.Retry.Delay = overrides.Retry.Delay
	}
	if overrides.Paths.Light != "" {
		cfg.Paths.Light = overrides.Paths.Light
	}
	if overrides.Paths.Dark != "" {
		cfg.Paths.Dark = overrides.Paths.Dark
	}
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
