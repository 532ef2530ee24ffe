package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"fileshare/internal/logger"
	"fileshare/internal/shorten"
	"fileshare/internal/transport"
	"fileshare/internal/upload"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     App     `mapstructure:"app"`
	Upload  Upload  `mapstructure:"upload"`
	Shorten Shorten `mapstructure:"shorten"`
	HTTP    HTTP    `mapstructure:"http"`
	Logging Logging `mapstructure:"logging"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	ConfigFile string `mapstructure:"config_file"`
}

// Upload holds the file host configuration
type Upload struct {
	Endpoint string `mapstructure:"endpoint"`
}

// Shorten holds the URL shortener configuration
type Shorten struct {
	Endpoint string `mapstructure:"endpoint"`
}

// HTTP holds settings for the shared HTTP client
type HTTP struct {
	UserAgent string `mapstructure:"user_agent"`
	Timeout   string `mapstructure:"timeout"`
}

// Logging holds logging configuration
type Logging struct {
	Level string `mapstructure:"level"`
}

// EnvPrefix is prepended to every environment override, e.g. FILESHARE_UPLOAD_ENDPOINT.
const EnvPrefix = "FILESHARE"

var globalConfig *Config

// Load loads the configuration from defaults, an optional config file, a
// .env file and the environment.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			logger.Warn("Error loading .env file", "error", err.Error())
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".fileshare")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	bindEnvironmentVariables()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.App.ConfigFile = viper.ConfigFileUsed()

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults reproduces the fixed service contract when nothing is configured.
func setDefaults() {
	viper.SetDefault("app.debug", false)

	viper.SetDefault("upload.endpoint", upload.DefaultEndpoint)
	viper.SetDefault("shorten.endpoint", shorten.DefaultEndpoint)

	viper.SetDefault("http.user_agent", transport.DefaultUserAgent)
	viper.SetDefault("http.timeout", "")

	viper.SetDefault("logging.level", "warn")
}

// bindEnvironmentVariables maps unprefixed aliases onto viper keys.
func bindEnvironmentVariables() {
	bindEnvKeys("app.debug", []string{
		"FILESHARE_DEBUG",
		"DEBUG",
	})

	bindEnvKeys("logging.level", []string{
		"FILESHARE_LOG_LEVEL",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// validateConfig ensures endpoints and durations are usable
func validateConfig(config *Config) error {
	var errors []string

	if err := validateEndpoint(config.Upload.Endpoint); err != nil {
		errors = append(errors, fmt.Sprintf("upload.endpoint: %v", err))
	}
	if err := validateEndpoint(config.Shorten.Endpoint); err != nil {
		errors = append(errors, fmt.Sprintf("shorten.endpoint: %v", err))
	}

	if config.HTTP.Timeout != "" {
		if d, err := time.ParseDuration(config.HTTP.Timeout); err != nil || d < 0 {
			errors = append(errors, fmt.Sprintf("http.timeout: invalid duration %q", config.HTTP.Timeout))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", endpoint)
	}
	return nil
}

// Timeout returns the parsed HTTP timeout; zero means no override.
func (c *Config) Timeout() time.Duration {
	if c.HTTP.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// LogLevel returns the effective log level, forced to debug in debug mode.
func (c *Config) LogLevel() string {
	if c.App.Debug {
		return "debug"
	}
	return c.Logging.Level
}

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
