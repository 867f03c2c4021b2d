// Package config provides functionality for loading and managing application configuration.
//
// This package handles loading settings from a YAML file with environment
// variable overrides, validating them, and making them accessible throughout
// the application. Settings are injected into each component at construction
// so tests can substitute fakes.
package config
