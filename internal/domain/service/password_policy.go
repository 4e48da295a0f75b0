package service

// PasswordPolicy validates password strength on the client before any
// registration request is sent. The identity provider enforces its own rules
// server-side; this exists so weak passwords never leave the form.
type PasswordPolicy interface {
	Validate(password string) error
}
