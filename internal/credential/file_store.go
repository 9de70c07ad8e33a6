package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// StoreKey is the fixed name the credential is saved under.
const StoreKey = "GEMINI_API_KEY"

type fileStore struct {
	path string
}

// NewFileStore saves the credential into a dotenv-formatted file.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (Credential, error) {
	env, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.path, err)
	}
	return Credential(env[StoreKey]), nil
}

func (s *fileStore) Save(c Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	env, err := godotenv.Read(s.path)
	if err != nil {
		env = map[string]string{}
	}
	env[StoreKey] = string(c)

	if err := godotenv.Write(env, s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return os.Chmod(s.path, 0600)
}

func (s *fileStore) Clear() error {
	env, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	delete(env, StoreKey)

	if len(env) == 0 {
		return os.Remove(s.path)
	}
	return godotenv.Write(env, s.path)
}
