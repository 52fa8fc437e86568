// Viper-based hierarchical configuration: defaults, then an optional YAML
// file, then BUDGET_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		// Delimiter pins the field separator; empty means sniff per file.
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		MaxRows   int    `mapstructure:"max_rows" yaml:"max_rows"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Server struct {
		Addr        string `mapstructure:"addr" yaml:"addr"`
		MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	} `mapstructure:"server" yaml:"server"`

	Projection struct {
		HorizonYears int     `mapstructure:"horizon_years" yaml:"horizon_years"`
		StocksRate   float64 `mapstructure:"stocks_rate" yaml:"stocks_rate"`
		BankRate     float64 `mapstructure:"bank_rate" yaml:"bank_rate"`
	} `mapstructure:"projection" yaml:"projection"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-csv")
	v.AddConfigPath(".budget-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BUDGET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file present but unreadable: keep going with
			// defaults and env vars, but say so.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", "")
	v.SetDefault("csv.max_rows", 100000)

	v.SetDefault("rules.file", "")

	v.SetDefault("server.addr", ":8050")
	v.SetDefault("server.max_upload_mb", 25)

	v.SetDefault("projection.horizon_years", 40)
	v.SetDefault("projection.stocks_rate", 0.07)
	v.SetDefault("projection.bank_rate", -0.01)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) > 1 {
		return fmt.Errorf("CSV delimiter must be a single character or empty, got: %s", config.CSV.Delimiter)
	}

	if config.CSV.MaxRows < 1 {
		return fmt.Errorf("csv.max_rows must be positive, got: %d", config.CSV.MaxRows)
	}

	if config.Server.MaxUploadMB < 1 || config.Server.MaxUploadMB > 500 {
		return fmt.Errorf("server.max_upload_mb must be between 1 and 500, got: %d", config.Server.MaxUploadMB)
	}

	if config.Projection.HorizonYears < 1 || config.Projection.HorizonYears > 100 {
		return fmt.Errorf("projection.horizon_years must be between 1 and 100, got: %d", config.Projection.HorizonYears)
	}

	for name, rate := range map[string]float64{
		"projection.stocks_rate": config.Projection.StocksRate,
		"projection.bank_rate":   config.Projection.BankRate,
	} {
		if rate < -1 || rate > 10 {
			return fmt.Errorf("%s must be between -1 and 10, got: %f", name, rate)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
