package favorites

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"rescue-dog-favorites/internal/platform/logger"
	"rescue-dog-favorites/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrLimitReached = errors.New("favorites limit reached")
)

const (
	DefaultMaxIDs = 100

	// DefaultStorageTimeout acota cada lectura/escritura del slot.
	DefaultStorageTimeout = 3 * time.Second
	// DefaultRetryInterval separa los reintentos contra un storage caído.
	DefaultRetryInterval = 5 * time.Second
)

type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeCleared  ChangeKind = "cleared"
	ChangeImported ChangeKind = "imported"
	ChangeLoaded   ChangeKind = "loaded"
)

// Change describe una mutación efectiva del set.
type Change struct {
	Kind     ChangeKind
	IDs      []int64 // ids afectados
	Snapshot []int64 // set completo después del cambio
}

// Store es el set de favoritos de un cliente: único dueño del estado,
// mutaciones controladas y observers vía Subscribe.
//
// Con storage, el set se escribe entero en cada mutación. Mientras el slot no
// se pudo leer (synced=false) no se escribe, para no pisar lo guardado; Service
// reintenta la lectura y une lo local con lo guardado.
type Store struct {
	mu    sync.Mutex
	key   string
	ids   []int64
	index map[int64]struct{}
	max   int

	repo     SlotRepository
	timeout  time.Duration
	retry    time.Duration
	synced   bool
	healthy  bool
	nextSync time.Time
	log      logger.Logger

	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
}

type storeConfig struct {
	max     int
	timeout time.Duration
	retry   time.Duration
	log     logger.Logger
}

func newStore(key string, repo SlotRepository, cfg storeConfig) *Store {
	if cfg.max <= 0 {
		cfg.max = DefaultMaxIDs
	}
	if cfg.timeout <= 0 {
		cfg.timeout = DefaultStorageTimeout
	}
	if cfg.retry <= 0 {
		cfg.retry = DefaultRetryInterval
	}
	if cfg.log == nil {
		cfg.log = logger.Discard()
	}
	return &Store{
		key:     key,
		index:   map[int64]struct{}{},
		max:     cfg.max,
		repo:    repo,
		timeout: cfg.timeout,
		retry:   cfg.retry,
		synced:  repo == nil,
		healthy: true,
		log:     cfg.log,
		subs:    map[int]func(Change){},
	}
}

// NewMemoryStore crea un store sin persistencia (tests, sesiones sin storage).
func NewMemoryStore(max int) *Store {
	return newStore("", nil, storeConfig{max: max})
}

func (s *Store) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Store) Contains(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[id]
	return ok
}

// Persistent es false mientras el storage no responde y el set vive solo en
// memoria. Vuelve a true cuando una lectura o escritura posterior sale bien.
func (s *Store) Persistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo != nil && s.synced && s.healthy
}

// Add es idempotente: si el id ya está, no hace nada.
func (s *Store) Add(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}

	s.mu.Lock()
	ch, err := s.addLocked(ctx, id)
	s.mu.Unlock()

	if ch != nil {
		s.notify(*ch)
	}
	return err
}

// Remove es no-op si el id no está.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}

	s.mu.Lock()
	ch := s.removeLocked(ctx, id)
	s.mu.Unlock()

	if ch != nil {
		s.notify(*ch)
	}
	return nil
}

// Toggle devuelve true si el id quedó agregado.
func (s *Store) Toggle(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidInput
	}

	s.mu.Lock()
	var (
		ch    *Change
		err   error
		added bool
	)
	if _, ok := s.index[id]; ok {
		ch = s.removeLocked(ctx, id)
	} else {
		ch, err = s.addLocked(ctx, id)
		added = err == nil
	}
	s.mu.Unlock()

	if ch != nil {
		s.notify(*ch)
	}
	return added, err
}

func (s *Store) addLocked(ctx context.Context, id int64) (*Change, error) {
	if _, ok := s.index[id]; ok {
		return nil, nil
	}
	if len(s.ids) >= s.max {
		return nil, ErrLimitReached
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	ch := s.commitLocked(ctx, ChangeAdded, []int64{id})
	return &ch, nil
}

func (s *Store) removeLocked(ctx context.Context, id int64) *Change {
	if _, ok := s.index[id]; !ok {
		return nil
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	ch := s.commitLocked(ctx, ChangeRemoved, []int64{id})
	return &ch
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if len(s.ids) == 0 {
		s.mu.Unlock()
		return
	}
	removed := s.snapshotLocked()
	s.ids = nil
	s.index = map[int64]struct{}{}
	ch := s.commitLocked(ctx, ChangeCleared, removed)
	s.mu.Unlock()

	s.notify(ch)
}

// ShareableURL serializa el set actual en un link que reproduce los mismos favoritos.
func (s *Store) ShareableURL(base string) (string, error) {
	return ShareableURL(base, s.IDs())
}

// LoadFromURL mezcla (unión) los ids del link en el set local.
// Parámetros mal formados se ignoran; devuelve cuántos ids nuevos se agregaron.
// Si el set se llena, los ids restantes se descartan.
func (s *Store) LoadFromURL(ctx context.Context, raw string) int {
	incoming := ParseSharedIDs(raw)
	if len(incoming) == 0 {
		return 0
	}

	s.mu.Lock()
	added := make([]int64, 0, len(incoming))
	for _, id := range incoming {
		if _, ok := s.index[id]; ok {
			continue
		}
		if len(s.ids) >= s.max {
			break
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
		added = append(added, id)
	}
	if len(added) == 0 {
		s.mu.Unlock()
		return 0
	}
	ch := s.commitLocked(ctx, ChangeImported, added)
	s.mu.Unlock()

	s.notify(ch)
	return len(added)
}

// Subscribe registra un observer; se llama después de cada cambio efectivo,
// fuera del lock del set. Devuelve la función para desuscribirse.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(ch Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ch)
	}
}

// commitLocked persiste el set y arma el Change. Requiere s.mu tomado.
func (s *Store) commitLocked(ctx context.Context, kind ChangeKind, affected []int64) Change {
	metrics.RecordMutation(string(kind))

	if s.repo != nil && s.synced {
		s.writeLocked(ctx)
	}

	return Change{
		Kind:     kind,
		IDs:      affected,
		Snapshot: s.snapshotLocked(),
	}
}

// writeLocked escribe el set completo. Usa un contexto desligado del request:
// un cliente que corta la conexión no es un storage caído.
func (s *Store) writeLocked(ctx context.Context) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err := s.repo.Set(wctx, s.key, encodeSlot(s.ids))
	switch {
	case err == nil:
		if !s.healthy {
			s.log.Info("favorites storage recovered", map[string]any{"key": s.key})
		}
		s.healthy = true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// la próxima mutación reescribe el set entero
		s.log.Warn("favorites slot write timed out", map[string]any{"key": s.key, "error": err.Error()})
	default:
		s.markUnhealthyLocked("favorites storage unavailable, keeping set in memory", err)
	}
}

func (s *Store) markUnhealthyLocked(msg string, err error) {
	if s.healthy {
		metrics.StorageFallbackTotal.Inc()
		s.log.Warn(msg, map[string]any{"key": s.key, "error": err.Error()})
	}
	s.healthy = false
}

// resync lee el slot si todavía no se pudo, o reescribe el set si la última
// escritura falló. Entre intentos fallidos espera s.retry.
func (s *Store) resync(ctx context.Context, now time.Time) {
	s.mu.Lock()
	if s.repo == nil || (s.synced && s.healthy) || now.Before(s.nextSync) {
		s.mu.Unlock()
		return
	}
	s.nextSync = now.Add(s.retry)
	if s.synced {
		s.writeLocked(ctx)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	payload, err := s.repo.Get(rctx, s.key)
	cancel()

	var stored []int64
	switch {
	case errors.Is(err, ErrSlotNotFound):
	case err != nil:
		s.mu.Lock()
		s.markUnhealthyLocked("favorites storage unavailable, using memory only", err)
		s.mu.Unlock()
		return
	default:
		if stored, err = decodeSlot(payload); err != nil {
			s.log.Warn("discarding corrupt favorites slot", map[string]any{"key": s.key, "error": err.Error()})
			stored = nil
		}
	}

	s.mu.Lock()
	before := s.snapshotLocked()
	s.mergeLocked(stored)
	s.synced = true
	s.healthy = true
	after := s.snapshotLocked()
	if !slices.Equal(after, stored) {
		s.writeLocked(ctx)
	}
	s.mu.Unlock()

	if !slices.Equal(before, after) {
		s.notify(Change{Kind: ChangeLoaded, IDs: stored, Snapshot: after})
	}
}

// mergeLocked deja primero lo guardado y después lo agregado localmente
// mientras el storage no respondía, respetando el límite.
func (s *Store) mergeLocked(stored []int64) {
	local := s.ids
	s.ids = make([]int64, 0, len(stored)+len(local))
	s.index = make(map[int64]struct{}, len(stored)+len(local))
	for _, list := range [][]int64{stored, local} {
		for _, id := range list {
			if _, dup := s.index[id]; dup || id <= 0 || len(s.ids) >= s.max {
				continue
			}
			s.index[id] = struct{}{}
			s.ids = append(s.ids, id)
		}
	}
}

func (s *Store) snapshotLocked() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}
