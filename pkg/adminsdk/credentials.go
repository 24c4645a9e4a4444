package adminsdk

import "sync"

// CredentialStore is the single slot holding the bearer token for the admin
// API. The transport reads it before every outbound request, writes it on
// login, and clears it on logout or on any 401 response.
//
// Implementations must be safe for concurrent use. The SDK ships an
// in-memory store; see the tokenstore package for a persistent one.
type CredentialStore interface {
	// Token returns the stored bearer token, or "" when none is stored.
	Token() (string, error)

	// SetToken stores the bearer token, replacing any previous value.
	SetToken(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// MemoryStore is a process-local CredentialStore. It is the default store
// used by a Client when none is injected.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
