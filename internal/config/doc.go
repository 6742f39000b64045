// Package config loads the server settings from an optional config.yaml and
// LINGUA_* environment variables, and validates them before startup.
package config
