package config

import (
	"os"
	"strings"

	"github.com/condwatch/condwatch/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "info"

	defaultPeakWindow          = 50
	defaultTrendWindow         = 10
	defaultDecimation          = 50
	defaultAmplitudeAlpha      = 0.30
	defaultTemperatureAlpha    = 0.10
	defaultNoiseFloor          = 2.0
	defaultMinSlope            = 0.01
	defaultMaxHorizon          = 120.0
	defaultAmplitudeWarning    = 8.0
	defaultAmplitudeCritical   = 11.2
	defaultTemperatureWarning  = 70.0
	defaultTemperatureCritical = 85.0
	defaultHistorianCapacity   = 3000
	defaultArchiveDB           = "/var/lib/condwatch/archive.db"
)

type Config struct {
	LogLevel string `mapstructure:"log_level"`

	// Input and output surfaces
	Input       string `mapstructure:"input"`
	ExportDir   string `mapstructure:"export_dir"`
	StatsListen string `mapstructure:"stats_listen"`
	Archive     bool   `mapstructure:"archive"`
	ArchiveDB   string `mapstructure:"archive_db"`

	// Analytics tuning
	PeakWindow          int     `mapstructure:"peak_window"`
	TrendWindow         int     `mapstructure:"trend_window"`
	Decimation          int     `mapstructure:"decimation"`
	AmplitudeAlpha      float64 `mapstructure:"amplitude_alpha"`
	TemperatureAlpha    float64 `mapstructure:"temperature_alpha"`
	NoiseFloor          float64 `mapstructure:"noise_floor"`
	MinSlope            float64 `mapstructure:"min_slope"`
	MaxHorizon          float64 `mapstructure:"max_horizon"`
	AmplitudeWarning    float64 `mapstructure:"amplitude_warning"`
	AmplitudeCritical   float64 `mapstructure:"amplitude_critical"`
	TemperatureWarning  float64 `mapstructure:"temperature_warning"`
	TemperatureCritical float64 `mapstructure:"temperature_critical"`
	HistorianCapacity   int     `mapstructure:"historian_capacity"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("input", "")
	v.SetDefault("export_dir", "")
	v.SetDefault("stats_listen", "")
	v.SetDefault("archive", false)
	v.SetDefault("archive_db", defaultArchiveDB)
	v.SetDefault("peak_window", defaultPeakWindow)
	v.SetDefault("trend_window", defaultTrendWindow)
	v.SetDefault("decimation", defaultDecimation)
	v.SetDefault("amplitude_alpha", defaultAmplitudeAlpha)
	v.SetDefault("temperature_alpha", defaultTemperatureAlpha)
	v.SetDefault("noise_floor", defaultNoiseFloor)
	v.SetDefault("min_slope", defaultMinSlope)
	v.SetDefault("max_horizon", defaultMaxHorizon)
	v.SetDefault("amplitude_warning", defaultAmplitudeWarning)
	v.SetDefault("amplitude_critical", defaultAmplitudeCritical)
	v.SetDefault("temperature_warning", defaultTemperatureWarning)
	v.SetDefault("temperature_critical", defaultTemperatureCritical)
	v.SetDefault("historian_capacity", defaultHistorianCapacity)

	flags := pflag.NewFlagSet("condwatch", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.String("log-level", "", "Log level (debug, info, warning, error)")
	flags.String("input", "", "Sample batch input file (defaults to stdin)")
	flags.String("export-dir", "", "Directory for historian exports on shutdown")
	flags.String("stats-listen", "", "Listen address for Prometheus stats")
	flags.Bool("archive", false, "Enable the snapshot archive")
	flags.String("archive-db", "", "Path to the snapshot archive database")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errors.Wrap(errors.ErrBindFlags, err)
	}

	// Flags override env, env overrides file, file overrides defaults
	flags.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	v.SetEnvPrefix("CONDWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("CONDWATCH_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("condwatch")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(errors.ErrReadConfig, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return errors.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.PeakWindow <= 0 || c.TrendWindow < 2 || c.Decimation <= 0 || c.HistorianCapacity <= 0 {
		return errors.WithData(errors.ErrInvalidConfig, "window capacities must be positive")
	}
	if c.AmplitudeAlpha <= 0 || c.AmplitudeAlpha > 1 || c.TemperatureAlpha <= 0 || c.TemperatureAlpha > 1 {
		return errors.WithData(errors.ErrInvalidConfig, "smoothing coefficients must be in (0, 1]")
	}
	if c.MaxHorizon <= 0 {
		return errors.WithData(errors.ErrInvalidConfig, "max_horizon must be positive")
	}
	if c.AmplitudeWarning >= c.AmplitudeCritical {
		return errors.WithData(errors.ErrInvalidConfig, "amplitude_warning must be below amplitude_critical")
	}
	if c.TemperatureWarning >= c.TemperatureCritical {
		return errors.WithData(errors.ErrInvalidConfig, "temperature_warning must be below temperature_critical")
	}
	if c.Archive && c.ArchiveDB == "" {
		return errors.WithData(errors.ErrInvalidConfig, "archive enabled without archive_db")
	}

	return nil
}
