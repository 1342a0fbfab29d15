// Package config loads the YAML configuration file and applies environment
// variable overrides declared through `env` struct tags.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Redis    RedisConfig    `yaml:"redis"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Logging  LoggingConfig  `yaml:"logging"`
	App      AppConfig      `yaml:"app"`
}

type ServerConfig struct {
	Host            string   `yaml:"host" env:"SERVER_HOST"`
	Port            int      `yaml:"port" env:"SERVER_PORT"`
	ReadTimeout     Duration `yaml:"readTimeout"`
	WriteTimeout    Duration `yaml:"writeTimeout"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout"`
	Mode            string   `yaml:"mode" env:"GIN_MODE"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"sslMode" env:"DB_SSLMODE"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

type JWTConfig struct {
	Secret          string   `yaml:"secret" env:"JWT_SECRET"`
	AccessTokenExp  Duration `yaml:"accessTokenExp"`
	RefreshTokenExp Duration `yaml:"refreshTokenExp"`
	VerificationExp Duration `yaml:"verificationExp"`
	Issuer          string   `yaml:"issuer"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type SMTPConfig struct {
	Host      string `yaml:"host" env:"SMTP_HOST"`
	Port      int    `yaml:"port" env:"SMTP_PORT"`
	Username  string `yaml:"username" env:"SMTP_USERNAME"`
	Password  string `yaml:"password" env:"SMTP_PASSWORD"`
	FromName  string `yaml:"fromName"`
	FromEmail string `yaml:"fromEmail" env:"SMTP_FROM_EMAIL"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
}

// AppConfig carries domain settings that do not belong to any one subsystem.
type AppConfig struct {
	FrontendURL   string `yaml:"frontendUrl" env:"FRONTEND_URL"`
	AdminEmail    string `yaml:"adminEmail" env:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"adminPassword" env:"ADMIN_PASSWORD"`
}

// Load reads the YAML file at path, applies defaults and env overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No file present is fine when env alone configures the app.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
			Mode:            "debug",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Name:     "pcell",
			SSLMode:  "disable",
			MaxConns: 10,
			MinConns: 2,
		},
		JWT: JWTConfig{
			AccessTokenExp:  Duration(time.Hour),
			RefreshTokenExp: Duration(7 * 24 * time.Hour),
			VerificationExp: Duration(15 * time.Minute),
			Issuer:          "pcell-backend",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		SMTP: SMTPConfig{
			Port:     587,
			FromName: "Placement Cell",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		App: AppConfig{
			FrontendURL: "http://localhost:3000",
		},
	}
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required (set JWT_SECRET)")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}
