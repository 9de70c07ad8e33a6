package credential

import (
	"errors"
	"strings"
)

const (
	// Placeholder is the sentinel shipped in sample env files.
	Placeholder = "PLACEHOLDER_API_KEY"
	// KeyPrefix is the prefix every Gemini API key carries.
	KeyPrefix = "AIza"
)

var (
	ErrMissing     = errors.New("api key is not set")
	ErrPlaceholder = errors.New("api key is still the placeholder value")
	ErrMalformed   = errors.New("api key has an unexpected format")
)

// Credential is an API key for the model endpoint. It prints masked.
type Credential string

// Configured reports whether the key is set and is not the placeholder.
func (c Credential) Configured() bool {
	return c != "" && c != Placeholder
}

// Validate performs the superficial format check done before any remote call.
func (c Credential) Validate() error {
	switch {
	case c == "":
		return ErrMissing
	case c == Placeholder:
		return ErrPlaceholder
	case !strings.HasPrefix(string(c), KeyPrefix):
		return ErrMalformed
	case strings.ContainsAny(string(c), " \t\r\n"):
		return ErrMalformed
	}
	return nil
}

// Masked keeps the prefix and the last four characters.
func (c Credential) Masked() string {
	s := string(c)
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}

func (c Credential) String() string {
	return c.Masked()
}
