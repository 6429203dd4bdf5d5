package dogs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"rescue-dog-favorites/internal/platform/logger"
	"rescue-dog-favorites/internal/platform/metrics"

	"golang.org/x/sync/errgroup"
)

// BatchSize mantiene cada lote dentro de los límites de largo de URL/query de la API.
const BatchSize = 20

var (
	ErrNotFound    = errors.New("dog not found")
	ErrFetchFailed = errors.New("dog fetch failed")
)

// Source resuelve un perro por id (API externa). Debe devolver ErrNotFound para 404.
type Source interface {
	GetByID(ctx context.Context, id int64) (Dog, error)
}

// Fetcher hidrata ids de favoritos a registros completos, tolerando fallas parciales.
type Fetcher struct {
	src       Source
	log       logger.Logger
	batchSize int
}

func NewFetcher(src Source, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Discard()
	}
	return &Fetcher{
		src:       src,
		log:       log,
		batchSize: BatchSize,
	}
}

// Batches parte ids en lotes de tamaño size (el último puede ser menor).
func Batches(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = BatchSize
	}
	out := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

// FetchByIDs trae todos los perros en lotes concurrentes.
// Un id que falla o da 404 se descarta; nunca aborta el lote.
// Devuelve ErrFetchFailed solo si la operación completa falló: contexto
// cancelado, o ningún perro llegó y al menos un id falló con error distinto de 404.
func (f *Fetcher) FetchByIDs(ctx context.Context, ids []int64) ([]Dog, error) {
	if len(ids) == 0 {
		return []Dog{}, nil
	}

	batches := Batches(ids, f.batchSize)
	results := make([][]*Dog, len(batches))

	var fetched, failed atomic.Int64

	var outer errgroup.Group
	for bi, batch := range batches {
		results[bi] = make([]*Dog, len(batch))
		metrics.FetchBatchesTotal.Inc()

		outer.Go(func() error {
			var inner errgroup.Group
			for i, id := range batch {
				inner.Go(func() error {
					d, err := f.src.GetByID(ctx, id)
					switch {
					case err == nil:
						metrics.RecordDogFetch("ok")
						fetched.Add(1)
						results[bi][i] = &d
					case errors.Is(err, ErrNotFound):
						metrics.RecordDogFetch("not_found")
						f.log.Debug("favorite dog not found", map[string]any{"dog_id": id})
					default:
						metrics.RecordDogFetch("error")
						failed.Add(1)
						f.log.Warn("favorite dog fetch failed", map[string]any{"dog_id": id, "error": err.Error()})
					}
					return nil
				})
			}
			return inner.Wait()
		})
	}
	_ = outer.Wait()

	if err := ctx.Err(); err != nil {
		return []Dog{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if fetched.Load() == 0 && failed.Load() > 0 {
		return []Dog{}, fmt.Errorf("%w: %d of %d requests failed", ErrFetchFailed, failed.Load(), len(ids))
	}

	out := make([]Dog, 0, len(ids))
	for _, batch := range results {
		for _, d := range batch {
			if d != nil {
				out = append(out, *d)
			}
		}
	}
	return out, nil
}
