package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rescue-dog-favorites/internal/domain/favorites"

	goredis "github.com/redis/go-redis/v9"
)

// SlotsRepo guarda cada slot como un string de Redis. TTL 0 = sin expiración.
type SlotsRepo struct {
	client goredis.Cmdable
	ttl    time.Duration
}

func NewSlotsRepo(client goredis.Cmdable, ttl time.Duration) *SlotsRepo {
	return &SlotsRepo{client: client, ttl: ttl}
}

// Open parsea la URL (redis://...) y verifica la conexión con PING.
func Open(ctx context.Context, rawURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (r *SlotsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, favorites.ErrSlotNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *SlotsRepo) Set(ctx context.Context, key string, payload []byte) error {
	return r.client.Set(ctx, key, payload, r.ttl).Err()
}
