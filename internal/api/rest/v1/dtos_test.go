//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   RegisterRequest
		shouldErr bool
	}{
		{"Valid request", RegisterRequest{Nombre: "Clara", Apellido: "Keller", Email: "clara@example.com", Password: "s3cret-pass"}, false},
		{"Missing nombre", RegisterRequest{Apellido: "Keller", Email: "clara@example.com", Password: "s3cret-pass"}, true},
		{"Missing apellido", RegisterRequest{Nombre: "Clara", Email: "clara@example.com", Password: "s3cret-pass"}, true},
		{"Malformed email", RegisterRequest{Nombre: "Clara", Apellido: "Keller", Email: "not-an-email", Password: "s3cret-pass"}, true},
		{"Password too short", RegisterRequest{Nombre: "Clara", Apellido: "Keller", Email: "clara@example.com", Password: "abc"}, true},
		{"Empty request", RegisterRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		shouldErr bool
	}{
		{"Valid request", LoginRequest{Email: "clara@example.com", Password: "s3cret-pass"}, false},
		{"Missing email", LoginRequest{Password: "s3cret-pass"}, true},
		{"Missing password", LoginRequest{Email: "clara@example.com"}, true},
		{"Malformed email", LoginRequest{Email: "nope", Password: "s3cret-pass"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestProjectRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ProjectRequest
		shouldErr bool
	}{
		{"Valid request", ProjectRequest{Title: "Portal", Description: "Research portal"}, false},
		{"Valid with optionals", ProjectRequest{Title: "Portal", Description: "d", URL: "https://example.com", Image: "x.png", Category: "web"}, false},
		{"Missing title", ProjectRequest{Description: "Research portal"}, true},
		{"Missing description", ProjectRequest{Title: "Portal"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestSkillRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   SkillRequest
		shouldErr bool
	}{
		{"Valid request", SkillRequest{Type: "technical", ParentCategory: "backend", Name: "Go", Level: 80}, false},
		{"Level at bounds", SkillRequest{Name: "Go", Level: 100}, false},
		{"Missing name", SkillRequest{Level: 50}, true},
		{"Level above range", SkillRequest{Name: "Go", Level: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestResetPasswordRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ResetPasswordRequest
		shouldErr bool
	}{
		{"Valid request", ResetPasswordRequest{Email: "clara@example.com", NewPassword: "new-pass-1", ConfirmPassword: "new-pass-1"}, false},
		{"Missing email", ResetPasswordRequest{NewPassword: "new-pass-1", ConfirmPassword: "new-pass-1"}, true},
		{"New password too short", ResetPasswordRequest{Email: "clara@example.com", NewPassword: "abc", ConfirmPassword: "abc"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
