package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the HTTP server configuration.
type ServerSettings struct {
	Port        string `mapstructure:"port" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode.
// Error details are only surfaced to clients in development.
func (s *ServerSettings) IsDevelopment() bool {
	return s.Environment == EnvDevelopment
}

// DatabaseSettings holds configuration settings for the database connection
type DatabaseSettings struct {
	Type         string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN          string `mapstructure:"dsn" validate:"required"`
	Name         string `mapstructure:"name"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}

// AuthSettings holds the signing secret and credential parameters.
// The secret is process-wide state loaded once at startup.
type AuthSettings struct {
	JWTSecret       string `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes" validate:"required,min=1"`
	BcryptCost      int    `mapstructure:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	return nil
}

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile && s.FilePath == "" {
		return fmt.Errorf("validation failed for LoggerSettings: file_path is required for file log type")
	}
	return nil
}
