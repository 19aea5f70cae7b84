package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// TokenKey is the fixed name the admin token is stored under.
const TokenKey = "admin_token"

// TokenStore is process-local persistent key/value storage for session data.
// Load returns "" when the key is absent.
type TokenStore interface {
	Load(key string) (string, error)
	Save(key, value string) error
	Remove(key string) error
}

// Session holds the admin credential for a Client. The zero value is not
// usable; create one with NewSession.
type Session struct {
	store TokenStore
}

// NewSession returns a Session backed by store. A nil store gets a fresh
// MemoryStore.
func NewSession(store TokenStore) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// Token returns the held admin token, or "" when logged out.
func (s *Session) Token() string {
	tok, err := s.store.Load(TokenKey)
	if err != nil {
		return ""
	}
	return tok
}

// IsLoggedIn reports whether a token is held. It makes no network call.
func (s *Session) IsLoggedIn() bool {
	return s.Token() != ""
}

func (s *Session) set(token string) error {
	return s.store.Save(TokenKey, token)
}

func (s *Session) clear() error {
	return s.store.Remove(TokenKey)
}

// MemoryStore is a TokenStore that lives for the life of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: make(map[string]string)}
}

func (m *MemoryStore) Load(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vals[key], nil
}

func (m *MemoryStore) Save(key, value string) error {
	m.mu.Lock()
	m.vals[key] = value
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	delete(m.vals, key)
	m.mu.Unlock()
	return nil
}

// FileStore is a TokenStore persisted as a JSON object in a single file,
// readable only by the owner. It survives process restarts.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore at path. The file is created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) read() (map[string]string, error) {
	vals := make(map[string]string)
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return vals, nil
	}
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return vals, nil
	}
	if err := json.Unmarshal(b, &vals); err != nil {
		return nil, fmt.Errorf("read token store %s: %w", f.path, err)
	}
	return vals, nil
}

func (f *FileStore) write(vals map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) Load(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vals, err := f.read()
	if err != nil {
		return "", err
	}
	return vals[key], nil
}

func (f *FileStore) Save(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	vals, err := f.read()
	if err != nil {
		return err
	}
	vals[key] = value
	return f.write(vals)
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	vals, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := vals[key]; !ok {
		return nil
	}
	delete(vals, key)
	return f.write(vals)
}
