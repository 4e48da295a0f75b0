// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"unicode"

	"artify/config"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/service"

	"github.com/pkg/errors"
)

// passwordPolicy is a concrete implementation of the PasswordPolicy
// interface, driven by the configured strength requirements.
type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy is the constructor for passwordPolicy. A nil strength
// config falls back to the registration form's historical rules: at least 6
// characters with one uppercase and one lowercase letter.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	strength := config.PasswordStrengthConfig{
		MinLength:        6,
		RequireUppercase: true,
		RequireLowercase: true,
		MaxLength:        128,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return &passwordPolicy{cfg: strength}
}

// Validate checks the password against the policy. Each violation returns
// its own predefined error so the form can show the specific message.
func (p *passwordPolicy) Validate(password string) error {
	if len(password) < p.cfg.MinLength {
		return errors.WithStack(domainerrors.ErrPasswordTooShort)
	}
	if p.cfg.MaxLength > 0 && len(password) > p.cfg.MaxLength {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password exceeds maximum length"))
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if p.cfg.RequireUppercase && !hasUpper {
		return errors.WithStack(domainerrors.ErrPasswordNoUppercase)
	}
	if p.cfg.RequireLowercase && !hasLower {
		return errors.WithStack(domainerrors.ErrPasswordNoLowercase)
	}
	if p.cfg.RequireNumbers && !hasNumber {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password requires a number"))
	}
	if p.cfg.RequireSpecial && !hasSpecial {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password requires a special character"))
	}

	return nil
}
