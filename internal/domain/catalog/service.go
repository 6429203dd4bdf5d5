package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"rescue-dog-favorites/internal/domain/dogs"
	"rescue-dog-favorites/internal/domain/favorites"
	"rescue-dog-favorites/internal/domain/insights"
	"rescue-dog-favorites/internal/platform/logger"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultMaxSessions = 10000
	DefaultSessionTTL  = 30 * time.Minute
)

// DogFetcher lo implementa *dogs.Fetcher.
type DogFetcher interface {
	FetchByIDs(ctx context.Context, ids []int64) ([]dogs.Dog, error)
}

type Options struct {
	Logger      logger.Logger
	Calculator  *insights.Calculator
	MaxSessions int
	SessionTTL  time.Duration
}

type Service struct {
	favs    *favorites.Service
	fetcher DogFetcher
	calc    *insights.Calculator
	log     logger.Logger

	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

// session guarda la última vista aplicada de un cliente y el contador de
// generación. Cada refresh y cada cambio de favoritos lo incrementa; un
// resultado que termina con una generación vieja se descarta.
type session struct {
	gen atomic.Uint64

	mu          sync.Mutex
	latest      *View
	store       *favorites.Store
	unsubscribe func()
}

func NewService(favs *favorites.Service, fetcher DogFetcher, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Calculator == nil {
		opts.Calculator = insights.NewCalculator(opts.Logger)
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	return &Service{
		favs:    favs,
		fetcher: fetcher,
		calc:    opts.Calculator,
		log:     opts.Logger,
		sessions: expirable.NewLRU[string, *session](opts.MaxSessions, func(_ string, sess *session) {
			sess.unbind()
		}, opts.SessionTTL),
	}
}

// View hidrata los favoritos del cliente, aplica el filtro y calcula insights.
// Devuelve ErrSuperseded si otro refresh o un cambio de favoritos ocurrió
// mientras tanto; en ese caso la vista no se guarda como última.
func (s *Service) View(ctx context.Context, clientID string, f Filter) (View, error) {
	st, err := s.favs.Store(ctx, clientID)
	if err != nil {
		return View{}, err
	}
	sess := s.session(clientID, st)
	gen := sess.gen.Add(1)

	v := s.compute(ctx, clientID, st, f)
	v.Generation = gen

	if !sess.apply(gen, v) {
		s.log.Debug("discarding stale view", map[string]any{"client_id": clientID, "generation": gen})
		return View{}, ErrSuperseded
	}
	return v, nil
}

// Latest devuelve la última vista aplicada del cliente, si hubo alguna.
func (s *Service) Latest(clientID string) (View, bool) {
	sess, ok := s.sessions.Get(clientID)
	if !ok {
		return View{}, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.latest == nil {
		return View{}, false
	}
	return *sess.latest, true
}

// Compare arma la comparación sobre la vista filtrada actual. No cuenta como
// refresh: no invalida vistas en curso ni reemplaza la última aplicada.
func (s *Service) Compare(ctx context.Context, clientID string, f Filter, ids []int64) (Comparison, error) {
	st, err := s.favs.Store(ctx, clientID)
	if err != nil {
		return Comparison{}, err
	}

	v := s.compute(ctx, clientID, st, f)
	if v.State == StateError {
		return Comparison{}, ErrDogsUnavailable
	}
	return Compare(v.Dogs, ids)
}

// Sessions devuelve cuántas sesiones hay en memoria.
func (s *Service) Sessions() int {
	return s.sessions.Len()
}

func (s *Service) compute(ctx context.Context, clientID string, st *favorites.Store, f Filter) View {
	ids := st.IDs()
	var (
		hydrated []dogs.Dog
		fetchErr error
	)
	if len(ids) > 0 {
		hydrated, fetchErr = s.fetcher.FetchByIDs(ctx, ids)
		if fetchErr != nil {
			s.log.Warn("could not load favorite dogs", map[string]any{
				"client_id": clientID,
				"count":     len(ids),
				"error":     fetchErr.Error(),
			})
		}
	}
	return build(len(ids), hydrated, fetchErr, f, s.calc)
}

// session devuelve la sesión del cliente suscripta a st. Si el store se
// reconstruyó (desalojado del cache de favoritos), se vuelve a suscribir.
func (s *Service) session(clientID string, st *favorites.Store) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(clientID)
	if !ok {
		sess = &session{}
	}
	sess.bind(st)
	s.sessions.Add(clientID, sess)
	return sess
}

func (sess *session) bind(st *favorites.Store) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.store == st {
		return
	}
	if sess.unsubscribe != nil {
		sess.unsubscribe()
	}
	sess.store = st
	sess.unsubscribe = st.Subscribe(func(favorites.Change) {
		sess.gen.Add(1)
	})
}

func (sess *session) unbind() {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.unsubscribe != nil {
		sess.unsubscribe()
	}
	sess.store = nil
	sess.unsubscribe = nil
}

func (sess *session) apply(gen uint64, v View) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.gen.Load() != gen {
		return false
	}
	sess.latest = &v
	return true
}
