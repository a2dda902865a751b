package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// DBConfig carries the Postgres connection settings.
type DBConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	ConnMaxIdleS int    `yaml:"conn_max_idle_sec"`
	ConnMaxLifeS int    `yaml:"conn_max_life_sec"`
}

// ConnMaxIdle returns the idle setting as a duration.
func (c DBConfig) ConnMaxIdle() time.Duration {
	return time.Duration(c.ConnMaxIdleS) * time.Second
}

// ConnMaxLife returns the lifetime setting as a duration.
func (c DBConfig) ConnMaxLife() time.Duration {
	return time.Duration(c.ConnMaxLifeS) * time.Second
}

// Config is the service configuration. Flags and environment variables fill
// it first; an optional YAML file supplies whatever they left empty.
type Config struct {
	Addr     string   `yaml:"addr"`
	DiagAddr string   `yaml:"diag_addr"`
	DB       DBConfig `yaml:"db"`
}

// Load reads config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Merge fills empty fields of the receiver from the other config.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if c.Addr == "" {
		c.Addr = other.Addr
	}
	if c.DiagAddr == "" {
		c.DiagAddr = other.DiagAddr
	}
	if c.DB.DSN == "" {
		c.DB.DSN = other.DB.DSN
	}
	if c.DB.MaxOpenConns == 0 {
		c.DB.MaxOpenConns = other.DB.MaxOpenConns
	}
	if c.DB.MaxIdleConns == 0 {
		c.DB.MaxIdleConns = other.DB.MaxIdleConns
	}
	if c.DB.ConnMaxIdleS == 0 {
		c.DB.ConnMaxIdleS = other.DB.ConnMaxIdleS
	}
	if c.DB.ConnMaxLifeS == 0 {
		c.DB.ConnMaxLifeS = other.DB.ConnMaxLifeS
	}
}

// GetEnv returns the environment variable value, or the fallback if unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

// GetEnvBool returns the environment variable parsed as a bool, or the
// fallback if unset or unparsable.
func GetEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}
