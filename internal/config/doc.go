// Package config defines the application configuration and loads it
// from environment variables (BANK_ prefix) and an optional config.yaml,
// with env vars taking precedence.
package config
