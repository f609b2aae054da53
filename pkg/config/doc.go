// Package config handles configuration management for roster.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML files and command-line flag overrides.
package config
