//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid settings",
			settings: &DatabaseSettings{
				Type: "postgres",
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "portfolio",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:  "user=postgres host=localhost",
				Name: "portfolio",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type: "sqlite",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{
			name: "valid settings",
			settings: &AuthSettings{
				JWTSecret:       "a-long-enough-signing-secret",
				TokenTTLMinutes: 60,
				BcryptCost:      10,
			},
			expectedError: false,
		},
		{
			name: "missing secret",
			settings: &AuthSettings{
				TokenTTLMinutes: 60,
			},
			expectedError: true,
		},
		{
			name: "short secret",
			settings: &AuthSettings{
				JWTSecret:       "short",
				TokenTTLMinutes: 60,
			},
			expectedError: true,
		},
		{
			name: "zero ttl",
			settings: &AuthSettings{
				JWTSecret: "a-long-enough-signing-secret",
			},
			expectedError: true,
		},
		{
			name: "bcrypt cost out of range",
			settings: &AuthSettings{
				JWTSecret:       "a-long-enough-signing-secret",
				TokenTTLMinutes: 60,
				BcryptCost:      99,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name:          "valid console settings",
			settings:      &LoggerSettings{LogLevel: "info", LogType: "console"},
			expectedError: false,
		},
		{
			name:          "file logger without path",
			settings:      &LoggerSettings{LogLevel: "info", LogType: "file"},
			expectedError: true,
		},
		{
			name:          "file logger with path",
			settings:      &LoggerSettings{LogLevel: "debug", LogType: "file", FilePath: "app.log"},
			expectedError: false,
		},
		{
			name:          "invalid level",
			settings:      &LoggerSettings{LogLevel: "verbose", LogType: "console"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServerSettings_IsDevelopment(t *testing.T) {
	dev := &ServerSettings{Port: "5000", Environment: EnvDevelopment}
	require.NoError(t, dev.Validate())
	require.True(t, dev.IsDevelopment())

	prod := &ServerSettings{Port: "5000", Environment: EnvProduction}
	require.NoError(t, prod.Validate())
	require.False(t, prod.IsDevelopment())
}
