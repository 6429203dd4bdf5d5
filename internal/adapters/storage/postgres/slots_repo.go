package postgres

import (
	"context"
	"errors"

	"rescue-dog-favorites/internal/domain/favorites"

	"github.com/jackc/pgx/v5"
)

type SlotsRepo struct {
	db DB
}

func NewSlotsRepo(db DB) *SlotsRepo {
	return &SlotsRepo{db: db}
}

func (r *SlotsRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `
		SELECT payload
		FROM favorite_slots
		WHERE key = $1
	`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, favorites.ErrSlotNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *SlotsRepo) Set(ctx context.Context, key string, payload []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorite_slots (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, key, payload)
	return err
}
