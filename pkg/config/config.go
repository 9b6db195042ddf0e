package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
)

type BackendConfig struct {
	BaseURL    string        `yaml:"baseUrl"`
	Timeout    time.Duration `yaml:"timeout"`
	Retries    int           `yaml:"retries"`
	BackoffMin time.Duration `yaml:"backoffMin"`
	BackoffMax time.Duration `yaml:"backoffMax"`
}

type FeedConfig struct {
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"clientId"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topicPrefix"`
	Timezone    string `yaml:"timezone"`
}

type DBConfig struct {
	Type string `yaml:"type"` // file | memory
	Path string `yaml:"path"`
}

type ServerConfig struct {
	HttpHostPort string  `yaml:"httpHostPort"`
	GrpcHostPort string  `yaml:"grpcHostPort"`
	DefaultRate  float64 `yaml:"defaultRate"`
	DefaultBurst int     `yaml:"defaultBurst"`
}

type ReportConfig struct {
	Dir          string        `yaml:"dir"`
	Every        time.Duration `yaml:"every"` // zero disables the scheduled report
	LookbackDays int           `yaml:"lookbackDays"`
}

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Feed    FeedConfig    `yaml:"feed"`
	DB      DBConfig      `yaml:"db"`
	Server  ServerConfig  `yaml:"server"`
	Report  ReportConfig  `yaml:"report"`
}

func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:    "http://localhost:8000/api",
			Timeout:    30 * time.Second,
			Retries:    2,
			BackoffMin: 200 * time.Millisecond,
			BackoffMax: 2 * time.Second,
		},
		Feed: FeedConfig{
			Broker:      "tcp://localhost:1883",
			ClientID:    "coldtrack-monitor",
			TopicPrefix: "status",
			Timezone:    "America/Santiago",
		},
		DB: DBConfig{
			Type: "file",
			Path: "coldtrack.db",
		},
		Server: ServerConfig{
			HttpHostPort: ":1080",
			DefaultRate:  20,
			DefaultBurst: 40,
		},
		Report: ReportConfig{
			Dir:          "reports",
			LookbackDays: 7,
		},
	}
}

// Load reads the optional YAML file at path, then .env and the process
// environment on top of it. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		buf, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(buf, cfg); err != nil {
				return nil, fmt.Errorf("parsing yaml %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// .env is optional outside development
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Backend.BaseURL, common.EnvKeyBackendURL)
	setString(&c.Feed.Broker, common.EnvKeyMQTTBroker)
	setString(&c.Feed.ClientID, common.EnvKeyMQTTClientID)
	setString(&c.Feed.Username, common.EnvKeyMQTTUsername)
	setString(&c.Feed.Password, common.EnvKeyMQTTPassword)
	setString(&c.Feed.TopicPrefix, common.EnvKeyFeedTopicPrefix)
	setString(&c.Feed.Timezone, common.EnvKeyDisplayTimezone)
	setString(&c.DB.Type, common.EnvKeyDBType)
	setString(&c.DB.Path, common.EnvKeyDbPath)
	setString(&c.Server.HttpHostPort, common.EnvKeyHttpHostPort)
	setString(&c.Server.GrpcHostPort, common.EnvKeyGrpcHostPort)
	setString(&c.Report.Dir, common.EnvKeyReportDir)

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{&c.Backend.Timeout, common.EnvKeyBackendTimeout},
		{&c.Backend.BackoffMin, common.EnvKeyBackendBackoffMin},
		{&c.Backend.BackoffMax, common.EnvKeyBackendBackoffMax},
		{&c.Report.Every, common.EnvKeyReportEvery},
	}
	for _, d := range durations {
		if err := setDuration(d.dst, d.key); err != nil {
			return err
		}
	}

	ints := []struct {
		dst *int
		key string
	}{
		{&c.Backend.Retries, common.EnvKeyBackendRetries},
		{&c.Server.DefaultBurst, common.EnvKeyDefaultBurst},
		{&c.Report.LookbackDays, common.EnvKeyReportLookback},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	if v, ok := os.LookupEnv(common.EnvKeyDefaultRate); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s, should be a float64 value: %w", common.EnvKeyDefaultRate, err)
		}
		c.Server.DefaultRate = f
	}

	switch c.DB.Type {
	case "file", "memory":
	default:
		return fmt.Errorf("unknown %s: %q", common.EnvKeyDBType, c.DB.Type)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s, should be an int value: %w", key, err)
	}
	*dst = n
	return nil
}

// Location resolves the display timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.Feed.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Feed.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
