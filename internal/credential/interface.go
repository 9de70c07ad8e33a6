package credential

// Holder keeps the credential for the current session.
type Holder interface {
	Get() Credential
	Set(value string) error
	Clear() error
	IsConfigured() bool
}

// Store persists the credential between sessions.
type Store interface {
	Load() (Credential, error)
	Save(c Credential) error
	Clear() error
}
