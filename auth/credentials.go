package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"la-blog/config"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// Credentials verifies the configured admin login. The password is stored
// as a bcrypt hash, never in plain text.
type Credentials struct {
	username     string
	passwordHash []byte
}

// NewCredentialsFromConfig builds the admin credential check from the app
// config. Both the username and the bcrypt hash must be set.
func NewCredentialsFromConfig(cfg config.AuthConfig) (*Credentials, error) {
	if cfg.AdminUsername == "" || cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD_HASH are required")
	}
	return &Credentials{
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
	}, nil
}

// Verify checks a login attempt. It returns ErrInvalidCredentials for any
// mismatch without revealing which part failed.
func (c *Credentials) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
