package repository

import (
	"context"
	"sync"
)

// MemoryRepository keeps blobs in process memory. Contents are lost on exit.
type MemoryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

func (r *MemoryRepository) Load(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	blob, ok := r.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

func (r *MemoryRepository) Save(_ context.Context, key string, blob []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobs[key] = append([]byte(nil), blob...)
	return nil
}
