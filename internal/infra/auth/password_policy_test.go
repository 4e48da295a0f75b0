package auth

import (
	"testing"

	"artify/config"
	domainerrors "artify/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy(nil)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid", password: "Sunset1", wantErr: nil},
		{name: "too short", password: "Ab1", wantErr: domainerrors.ErrPasswordTooShort},
		{name: "no uppercase", password: "sunset1", wantErr: domainerrors.ErrPasswordNoUppercase},
		{name: "no lowercase", password: "SUNSET1", wantErr: domainerrors.ErrPasswordNoLowercase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPasswordPolicy_ConfiguredRequirements(t *testing.T) {
	cfg := &config.Config{}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:      8,
		RequireNumbers: true,
	}
	policy := NewPasswordPolicy(cfg)

	require.Error(t, policy.Validate("letters-only"))
	require.NoError(t, policy.Validate("letters-1"))
}
