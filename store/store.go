// Copyright (c) 2026 Playcall.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
)

// CollectionStore persists whole serialized collections keyed by user and
// collection key. Save always overwrites; there are no partial writes.
type CollectionStore interface {
	// Load returns the saved collection, or ok=false if nothing is saved.
	Load(ctx context.Context, userID, key string) (data []byte, ok bool, err error)
	// Save overwrites any previously saved collection under the key.
	Save(ctx context.Context, userID, key string, data []byte) error
	// Delete removes the saved collection. Unknown keys are a no-op.
	Delete(ctx context.Context, userID, key string) error
}

// MemoryStore is an in-process CollectionStore guarded by a mutex. It holds
// the demo-tier data and everything a test needs; contents vanish on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, userID, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.data[userID+"\x00"+key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(d))
	copy(cp, d)
	return cp, true, nil
}

func (s *MemoryStore) Save(_ context.Context, userID, key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID+"\x00"+key] = cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID+"\x00"+key)
	return nil
}
