package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/homescout/listing-service/internal/utils"
)

const (
	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"

	DefaultConfigFile = "config.yaml"
	DefaultEnvFile    = ".env"
)

// AppName can be overridden at build time with
// -ldflags "-X github.com/homescout/listing-service/internal/config.AppName=..."
var AppName = "listing-service"

type Config struct {
	AppName              string        `yaml:"-"`
	Env                  string        `yaml:"env"`
	AppPort              string        `yaml:"app_port"`
	AppUrl               string        `yaml:"app_url_from_anywhere"`
	CORSHighSecurity     bool          `yaml:"cors_high_security"`
	StorageDriver        string        `yaml:"storage_driver"`
	MongoURI             string        `yaml:"mongo_uri"`
	MongoDBName          string        `yaml:"mongo_db_name"`
	MongoTimeout         time.Duration `yaml:"mongo_timeout"`
	DefaultPageLimit     int           `yaml:"default_page_limit"`
	MaxPageLimit         int           `yaml:"max_page_limit"`
	RefNumberMaxAttempts int           `yaml:"ref_number_max_attempts"`
	SeedDBWithTestData   bool          `yaml:"seed_db_with_test_data"`
	StatsCron            string        `yaml:"stats_cron"`
	LogLevel             string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AppName:              AppName,
		Env:                  "dev",
		AppPort:              "5000",
		AppUrl:               "http://localhost:3000",
		StorageDriver:        StorageDriverMongo,
		MongoDBName:          "listings",
		MongoTimeout:         10 * time.Second,
		DefaultPageLimit:     10,
		MaxPageLimit:         100,
		RefNumberMaxAttempts: 3,
		StatsCron:            "@every 1h",
		LogLevel:             "info",
	}
}

// Load layers defaults, the YAML file named by CONFIG_FILE, the .env file
// and finally the process environment. Missing files are skipped.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = DefaultConfigFile
	}
	if err := cfg.mergeYAMLFile(path); err != nil {
		return nil, err
	}

	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load for main: any problem is fatal.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	cfg, err := Load()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load config")
	}

	utils.Logger.WithFields(logrus.Fields{
		"env":            cfg.Env,
		"port":           cfg.AppPort,
		"storage_driver": cfg.StorageDriver,
		"db":             cfg.MongoDBName,
	}).Info("Config loaded")
	return cfg
}

func (c *Config) mergeYAMLFile(path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(raw, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("ENV", &c.Env)
	str("APP_PORT", &c.AppPort)
	str("APP_URL_FROM_ANYWHERE", &c.AppUrl)
	str("STORAGE_DRIVER", &c.StorageDriver)
	str("MONGO_URI", &c.MongoURI)
	str("MONGO_DB_NAME", &c.MongoDBName)
	str("LOG_LEVEL", &c.LogLevel)

	// An explicitly empty STATS_CRON disables the job.
	if v, ok := lookup("STATS_CRON"); ok {
		c.StatsCron = strings.TrimSpace(v)
	}

	var errs []error
	parse := func(key string, fn func(string) error) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		if err := fn(v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
		}
	}
	boolInto := func(dst *bool) func(string) error {
		return func(v string) (err error) {
			*dst, err = strconv.ParseBool(v)
			return err
		}
	}
	intInto := func(dst *int) func(string) error {
		return func(v string) (err error) {
			*dst, err = strconv.Atoi(v)
			return err
		}
	}

	parse("CORS_HIGH_SECURITY", boolInto(&c.CORSHighSecurity))
	parse("SEED_DB_WITH_TEST_DATA", boolInto(&c.SeedDBWithTestData))
	parse("DEFAULT_PAGE_LIMIT", intInto(&c.DefaultPageLimit))
	parse("MAX_PAGE_LIMIT", intInto(&c.MaxPageLimit))
	parse("REF_NUMBER_MAX_ATTEMPTS", intInto(&c.RefNumberMaxAttempts))
	parse("MONGO_TIMEOUT", func(v string) (err error) {
		c.MongoTimeout, err = time.ParseDuration(v)
		return err
	})

	return errors.Join(errs...)
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORAGE_DRIVER is mongo")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.AppPort == "" {
		return errors.New("APP_PORT must not be empty")
	}
	if c.DefaultPageLimit < 1 {
		return fmt.Errorf("DEFAULT_PAGE_LIMIT must be positive, got %d", c.DefaultPageLimit)
	}
	if c.MaxPageLimit < c.DefaultPageLimit {
		return fmt.Errorf("MAX_PAGE_LIMIT (%d) must be >= DEFAULT_PAGE_LIMIT (%d)", c.MaxPageLimit, c.DefaultPageLimit)
	}
	if c.RefNumberMaxAttempts < 1 {
		return fmt.Errorf("REF_NUMBER_MAX_ATTEMPTS must be positive, got %d", c.RefNumberMaxAttempts)
	}
	return nil
}
