package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CredentialStore defines the interface for connection-coordinate
// persistence. Only the base URL and username are stored; the secret is
// re-entered per session and never written to disk.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(creds Credentials) error
}

// Credentials are the last-used connection coordinates.
type Credentials struct {
	BaseURL  string `json:"baseUrl"`
	Username string `json:"username"`
}

// FileCredentialStore implements CredentialStore on a local JSON file.
type FileCredentialStore struct {
	path string
}

// NewFileCredentialStore creates a store rooted at the given directory.
func NewFileCredentialStore(dir string) *FileCredentialStore {
	return &FileCredentialStore{
		path: filepath.Join(dir, "credentials.json"),
	}
}

// Load reads the stored credentials. A store that has never been
// written reads as nil, not as an error.
func (s *FileCredentialStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}
	return &creds, nil
}

// Save writes the credentials atomically via a temp file rename.
func (s *FileCredentialStore) Save(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}
