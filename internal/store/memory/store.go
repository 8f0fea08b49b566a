package memory

import (
	"context"
	"sync"

	"github.com/wurt83ow/docusign-skill/internal/store"
)

// Store реализует интерфейс store.Store в памяти процесса.
type Store struct {
	mu         sync.RWMutex
	recipients map[string]store.Recipient
}

// NewStore возвращает справочник, заполненный переданными получателями.
func NewStore(recipients ...store.Recipient) *Store {
	s := &Store{recipients: make(map[string]store.Recipient, len(recipients))}
	for _, r := range recipients {
		s.recipients[r.Name] = r
	}
	return s
}

func (s *Store) FindRecipient(_ context.Context, name string) (store.Recipient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipients[name]
	if !ok {
		return store.Recipient{}, store.ErrNotFound
	}
	return r, nil
}

func (s *Store) RegisterRecipient(_ context.Context, r store.Recipient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipients[r.Name]; ok {
		return store.ErrConflict
	}
	s.recipients[r.Name] = r
	return nil
}
