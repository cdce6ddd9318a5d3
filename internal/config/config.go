// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the sections
// service. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is not set.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the API client binary.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level that is written
	// (e.g. "debug", "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database. PostgreSQL DSNs start
	// with "postgres://" or "postgresql://"; SQLite DSNs start with
	// "sqlite://" or "file:".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the number of open connections in the pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`

	// MaxIdleConns limits the number of idle connections kept in the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS" envDefault:"4"`

	// RetryAttempts is how many times a query failing with a transient
	// error is retried.
	// Env: STORAGE_DB_RETRY_ATTEMPTS
	RetryAttempts uint64 `env:"RETRY_ATTEMPTS" envDefault:"3"`

	// RetryDelay is the base delay of the exponential retry backoff.
	// Env: STORAGE_DB_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"100ms"`

	// Migrate applies the embedded migrations on startup.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Adapter holds settings of the HTTP client used by the client binary.
type Adapter struct {
	// HTTPAddress is the base address of the sections API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientConfig is the configuration view used by the client binary.
type ClientConfig struct {
	// Adapter contains the API address and the request timeout.
	Adapter Adapter

	// LogLevel is the minimal level of client log entries.
	LogLevel string

	// Args holds the positional command-line arguments left after flag
	// parsing (the client command and its operands).
	Args []string
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory (if present)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetClientConfig builds and validates the client configuration view from
// the same sources as [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	builder := newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter:  cfg.Adapter,
		LogLevel: cfg.App.LogLevel,
		Args:     builder.args,
	}

	return clientCfg, clientCfg.validate()
}
