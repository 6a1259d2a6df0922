package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults used when the YAML file leaves a field out.
const (
	DEFAULT_ENVIRONMENT              = "development"
	DEFAULT_HTTP_PORT                = 8080
	DEFAULT_SHUTDOWN_TIMEOUT_SECONDS = 5
	DEFAULT_REDIS_DB_ADDRESS         = "redis:6379"
	DEFAULT_REDIS_DB                 = 0
	DEFAULT_BEST_TIME_ENDPOINT_V1    = "https://besttime.app/api/v1"
	DEFAULT_BEST_TIME_TIMEOUT_SEC    = 10
	DEFAULT_REFRESH_INTERVAL_MINUTES = 60
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_IDS_RESOURCE = "static_venues_ids.json"
const VENUES_FIXTURE_RESOURCE = "venues_fixture.json"

type Config struct {
	Environment string `yaml:"environment"`

	HTTP struct {
		Port                   int `yaml:"port"`
		ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
	} `yaml:"http"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"-"` // Loaded from environment
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	BestTime struct {
		EndpointBase   string `yaml:"endpoint_base"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		PublicKey      string `yaml:"-"` // Loaded from environment
		PrivateKey     string `yaml:"-"` // Loaded from environment
	} `yaml:"besttime"`

	Refresher struct {
		IntervalMinutes int    `yaml:"interval_minutes"`
		VenueIDsPath    string `yaml:"venue_ids_path"`
		FixturePath     string `yaml:"fixture_path"`
	} `yaml:"refresher"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads an optional .env next to configPath, then the YAML file. A
// missing YAML file is not an error: defaults and environment apply.
func Load(configPath string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = DEFAULT_ENVIRONMENT
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DEFAULT_HTTP_PORT
	}
	if c.HTTP.ShutdownTimeoutSeconds == 0 {
		c.HTTP.ShutdownTimeoutSeconds = DEFAULT_SHUTDOWN_TIMEOUT_SECONDS
	}
	if c.Redis.Address == "" {
		c.Redis.Address = DEFAULT_REDIS_DB_ADDRESS
	}
	if c.BestTime.EndpointBase == "" {
		c.BestTime.EndpointBase = DEFAULT_BEST_TIME_ENDPOINT_V1
	}
	if c.BestTime.TimeoutSeconds == 0 {
		c.BestTime.TimeoutSeconds = DEFAULT_BEST_TIME_TIMEOUT_SEC
	}
	if c.Refresher.IntervalMinutes == 0 {
		c.Refresher.IntervalMinutes = DEFAULT_REFRESH_INTERVAL_MINUTES
	}
	if c.Refresher.VenueIDsPath == "" {
		c.Refresher.VenueIDsPath = GetResourcePath(VENUES_IDS_RESOURCE)
	}
	if c.Refresher.FixturePath == "" {
		c.Refresher.FixturePath = GetResourcePath(VENUES_FIXTURE_RESOURCE)
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.HTTP.Port = port
		}
	}
	c.Redis.Password = os.Getenv("REDIS_PASSWORD")
	c.BestTime.PublicKey = os.Getenv("BEST_TIME_PUBLIC_KEY")
	c.BestTime.PrivateKey = os.Getenv("BEST_TIME_PRIVATE_KEY")
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port out of range: %d", c.HTTP.Port)
	}
	if c.Refresher.IntervalMinutes < 0 {
		return fmt.Errorf("refresher interval must not be negative")
	}
	if c.IsProd() && c.BestTime.PrivateKey == "" {
		return fmt.Errorf("BEST_TIME_PRIVATE_KEY is required in prod")
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.HTTP.ShutdownTimeoutSeconds) * time.Second
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresher.IntervalMinutes) * time.Minute
}

func (c *Config) BestTimeTimeout() time.Duration {
	return time.Duration(c.BestTime.TimeoutSeconds) * time.Second
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
