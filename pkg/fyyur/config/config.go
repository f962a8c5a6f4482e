// Package config loads runtime settings from the environment. A .env file in
// the working directory is read first when present; real environment
// variables always win over values from the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mikepea/fyyur/pkg/fyyur/database"
)

// Config holds all runtime configuration values
type Config struct {
	Env  string
	Port string

	Database database.Options

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FlashTTL      time.Duration

	RabbitURL string
}

// IsProduction reports whether the app runs in production mode
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production") || strings.EqualFold(c.Env, "prod")
}

// Load reads an optional .env file and builds a Config from the environment
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only
func FromEnv() Config {
	return Config{
		Env:  envStr("FYYUR_ENV", "development"),
		Port: envStr("PORT", "8080"),
		Database: database.Options{
			Driver:          envStr("FYYUR_DB_DRIVER", database.DriverSQLite),
			DSN:             envStr("FYYUR_DB_DSN", "fyyur.db"),
			LogLevel:        envStr("FYYUR_DB_LOG_LEVEL", "warn"),
			MaxOpenConns:    envInt("FYYUR_DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("FYYUR_DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDur("FYYUR_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		FlashTTL:      envDur("FLASH_TTL", 10*time.Minute),
		RabbitURL:     os.Getenv("RABBITMQ_URL"),
	}
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
