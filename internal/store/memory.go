package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/agentgate/internal/common"
	"github.com/dmitrijs2005/agentgate/internal/principal"
)

// MemoryStore is an in-memory CredentialStore with the same create-if-absent
// semantics as the DynamoDB backend. Used in tests and local runs.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]principal.Credential
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]principal.Credential)}
}

func (s *MemoryStore) GetByUsername(ctx context.Context, username string) (*principal.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.items[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	// copy, so callers cannot mutate the stored record
	return &cred, nil
}

func (s *MemoryStore) CreateIfAbsent(ctx context.Context, cred *principal.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[cred.Username]; ok {
		return common.ErrorAlreadyExists
	}
	s.items[cred.Username] = *cred
	return nil
}
