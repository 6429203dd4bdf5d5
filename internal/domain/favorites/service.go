package favorites

import (
	"context"
	"strings"
	"time"

	"rescue-dog-favorites/internal/platform/logger"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 30 * time.Minute
)

type Options struct {
	MaxFavorites int
	Logger       logger.Logger

	// CacheSize y CacheTTL acotan los stores en memoria; uno desalojado se
	// vuelve a leer del slot en el próximo pedido.
	CacheSize int
	CacheTTL  time.Duration

	StorageTimeout time.Duration
	RetryInterval  time.Duration
}

// Service mantiene un Store por cliente, cargado del slot la primera vez que se pide.
type Service struct {
	repo SlotRepository
	cfg  storeConfig
	log  logger.Logger
	now  func() time.Time

	stores *expirable.LRU[string, *Store]
	loads  singleflight.Group
}

func NewService(repo SlotRepository, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Service{
		repo: repo,
		cfg: storeConfig{
			max:     opts.MaxFavorites,
			timeout: opts.StorageTimeout,
			retry:   opts.RetryInterval,
		},
		log:    opts.Logger,
		now:    time.Now,
		stores: expirable.NewLRU[string, *Store](opts.CacheSize, nil, opts.CacheTTL),
	}
}

// Store devuelve el set del cliente. Si el storage no responde, el set arranca
// vacío y solo en memoria, y la lectura se reintenta en pedidos siguientes; un
// slot corrupto se descarta y se sigue persistiendo.
func (s *Service) Store(ctx context.Context, clientID string) (*Store, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidInput
	}

	// la lectura del slot corre fuera de cualquier lock global; pedidos
	// concurrentes del mismo cliente comparten una sola
	v, _, _ := s.loads.Do(clientID, func() (any, error) {
		st, ok := s.stores.Get(clientID)
		if !ok {
			cfg := s.cfg
			cfg.log = s.log.With(map[string]any{"client_id": clientID})
			st = newStore(slotKey(clientID), s.repo, cfg)
		}
		st.resync(ctx, s.now())
		s.stores.Add(clientID, st)
		return st, nil
	})
	return v.(*Store), nil
}

// Cached devuelve cuántos stores hay en memoria.
func (s *Service) Cached() int {
	return s.stores.Len()
}
