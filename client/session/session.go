// Package session persists the single opaque auth token between runs.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenFile is the well-known name the token is stored under.
const TokenFile = "eco_token"

// Store owns the persisted session token. An empty token means no session.
type Store interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// FileStore keeps the token in a single file on disk so a session survives
// restarts. Reads never fail; a missing or unreadable file reads as "".
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the conventional token location under the user config
// directory, falling back to the working directory when it is unavailable.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return TokenFile
	}
	return filepath.Join(dir, "ecoally", TokenFile)
}

func (s *FileStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	token string
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Token() string { return s.token }

func (s *MemStore) SetToken(token string) error {
	s.token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.token = ""
	return nil
}
