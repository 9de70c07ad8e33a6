package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunpil/youtube/internal/logger"
)

const testKey = "AIzaSyTestKey0123456789abcdefghijklmn"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cred    Credential
		wantErr error
	}{
		{"valid key", Credential(testKey), nil},
		{"empty", "", ErrMissing},
		{"placeholder", Placeholder, ErrPlaceholder},
		{"wrong prefix", "sk-proj-123456", ErrMalformed},
		{"embedded whitespace", "AIza key", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cred.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigured(t *testing.T) {
	assert.True(t, Credential(testKey).Configured())
	assert.True(t, Credential("not-a-gemini-key").Configured())
	assert.False(t, Credential("").Configured())
	assert.False(t, Credential(Placeholder).Configured())
}

func TestMasked(t *testing.T) {
	c := Credential(testKey)
	masked := c.Masked()

	assert.Equal(t, len(testKey), len(masked))
	assert.Equal(t, "AIza", masked[:4])
	assert.Equal(t, testKey[len(testKey)-4:], masked[len(masked)-4:])
	assert.NotContains(t, masked, "TestKey")
	assert.Equal(t, masked, fmt.Sprintf("%s", c))
	assert.Equal(t, "****", Credential("abcd").Masked())
}

func TestHolderInMemory(t *testing.T) {
	h, err := New(nil, logger.New("error", "console"))
	require.NoError(t, err)

	assert.False(t, h.IsConfigured())
	assert.Equal(t, Credential(""), h.Get())

	require.NoError(t, h.Set("  "+testKey+"\n"))
	assert.Equal(t, Credential(testKey), h.Get())
	assert.True(t, h.IsConfigured())

	require.NoError(t, h.Set(Placeholder))
	assert.False(t, h.IsConfigured())

	require.NoError(t, h.Clear())
	assert.Equal(t, Credential(""), h.Get())
}

func TestHolderPersistsThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "credential.env")
	log := logger.New("error", "console")

	first, err := New(NewFileStore(path), log)
	require.NoError(t, err)
	assert.False(t, first.IsConfigured())

	require.NoError(t, first.Set(testKey))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A new session reads the saved key back.
	second, err := New(NewFileStore(path), log)
	require.NoError(t, err)
	assert.Equal(t, Credential(testKey), second.Get())

	require.NoError(t, second.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	third, err := New(NewFileStore(path), log)
	require.NoError(t, err)
	assert.False(t, third.IsConfigured())
}

func TestFileStoreKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential.env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=value\n"), 0600))

	store := NewFileStore(path)
	require.NoError(t, store.Save(Credential(testKey)))
	require.NoError(t, store.Clear())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "OTHER")
	assert.NotContains(t, string(data), StoreKey)
}
