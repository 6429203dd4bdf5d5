package memory

import (
	"context"
	"sync"

	"rescue-dog-favorites/internal/domain/favorites"
)

type slotsRepo struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewSlotsRepo() favorites.SlotRepository {
	return &slotsRepo{
		byKey: make(map[string][]byte),
	}
}

func (r *slotsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byKey[key]
	if !ok {
		return nil, favorites.ErrSlotNotFound
	}
	// copia para que el caller no comparta el buffer
	return append([]byte(nil), b...), nil
}

func (r *slotsRepo) Set(ctx context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[key] = append([]byte(nil), payload...)
	return nil
}
