package favorites

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrSlotNotFound lo devuelven los adapters cuando el slot no existe.
	ErrSlotNotFound = errors.New("favorites slot not found")
)

// SlotRepository es el almacenamiento clave/valor donde vive el set serializado
// de cada cliente (equivalente al localStorage del navegador).
type SlotRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

func slotKey(clientID string) string {
	return "favorites:" + clientID
}

func encodeSlot(ids []int64) []byte {
	if ids == nil {
		ids = []int64{}
	}
	b, _ := json.Marshal(ids)
	return b
}

// decodeSlot descarta ids inválidos y duplicados; un JSON corrupto es error.
func decodeSlot(payload []byte) ([]int64, error) {
	var raw []int64
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	seen := map[int64]struct{}{}
	out := make([]int64, 0, len(raw))
	for _, id := range raw {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
