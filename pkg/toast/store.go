package toast

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/logger"
)

// Reason records why a toast left the screen.
type Reason int

const (
	ReasonDismissed Reason = iota
	ReasonExpired
	ReasonEvicted
	ReasonCleared
)

func (r Reason) String() string {
	switch r {
	case ReasonDismissed:
		return "dismissed"
	case ReasonExpired:
		return "expired"
	case ReasonEvicted:
		return "evicted"
	case ReasonCleared:
		return "cleared"
	}
	return "unknown"
}

// Observer is told about every toast that appears or disappears.
// Calls happen after the store lock is released, in mutation order per
// goroutine.
type Observer interface {
	ToastShown(t Toast)
	ToastRemoved(t Toast, reason Reason)
}

// Snapshot is a read-only copy of the visible toasts.
// Version increases with every change to the store.
type Snapshot struct {
	Version   uint64               `json:"version"`
	Positions map[Position][]Toast `json:"positions"`
}

// At returns the toasts at pos, oldest first.
func (s Snapshot) At(pos Position) []Toast {
	return s.Positions[pos]
}

// Len returns the number of visible toasts.
func (s Snapshot) Len() int {
	n := 0
	for _, ts := range s.Positions {
		n += len(ts)
	}
	return n
}

// Find looks a toast up by id.
func (s Snapshot) Find(id string) (Toast, bool) {
	for _, ts := range s.Positions {
		for _, t := range ts {
			if t.ID == id {
				return t, true
			}
		}
	}
	return Toast{}, false
}

type removal struct {
	toast  Toast
	reason Reason
}

// change is what one mutation did, published after the lock is released.
type change struct {
	shown   []Toast
	removed []removal
}

func (c change) empty() bool {
	return len(c.shown) == 0 && len(c.removed) == 0
}

// Store holds the visible toasts bucketed by position. It is the single
// source of truth for a provider: every mutation goes through Add, Remove,
// Clear or a timer expiry, and all removals share one path that cancels the
// toast's timer.
//
// Store is safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	cfg         Config
	buckets     map[Position]*bucket
	index       map[string]Position
	scheduler   Scheduler
	observers   []Observer
	subscribers map[uint64]func(Snapshot)
	nextSub     uint64
	seq         uint64
	version     uint64
	closed      bool

	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithScheduler replaces the runtime timer scheduler.
func WithScheduler(s Scheduler) StoreOption {
	return func(st *Store) {
		if s != nil {
			st.scheduler = s
		}
	}
}

// WithLogger sets the logger for the Store.
func WithLogger(l *slog.Logger) StoreOption {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// WithObserver registers an observer. May be given more than once.
func WithObserver(o Observer) StoreOption {
	return func(st *Store) {
		if o != nil {
			st.observers = append(st.observers, o)
		}
	}
}

// WithClock sets the wall clock used for Toast.CreatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(st *Store) {
		if now != nil {
			st.now = now
		}
	}
}

// WithIDGenerator replaces the UUID id generator. Generated ids must be unique.
func WithIDGenerator(gen func() string) StoreOption {
	return func(st *Store) {
		if gen != nil {
			st.newID = gen
		}
	}
}

// NewStore creates a store with six empty buckets.
func NewStore(cfg Config, opts ...StoreOption) *Store {
	cfg = cfg.normalize()

	s := &Store{
		cfg:         cfg,
		buckets:     make(map[Position]*bucket, len(Positions())),
		index:       make(map[string]Position),
		subscribers: make(map[uint64]func(Snapshot)),
		logger:      slog.Default(),
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scheduler == nil {
		s.scheduler = NewTimerScheduler()
	}

	capacity := cfg.MaxToasts
	if cfg.Policy == Global {
		// The store enforces the total itself.
		capacity = 0
	}
	for _, pos := range Positions() {
		s.buckets[pos] = newBucket(pos, capacity)
	}
	return s
}

// Config returns the normalized configuration.
func (s *Store) Config() Config {
	return s.cfg
}

// Add validates opts, inserts the new toast and starts its timer.
// Inserting may evict the oldest toasts to respect capacity.
func (s *Store) Add(opts Options) (Toast, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Toast{}, ErrStoreClosed
	}

	t, err := opts.build(s.cfg)
	if err != nil {
		s.mu.Unlock()
		return Toast{}, err
	}
	s.seq++
	t.ID = s.newID()
	t.Seq = s.seq
	t.CreatedAt = s.now()

	var ch change
	ch.shown = append(ch.shown, t)
	s.index[t.ID] = t.Position
	for _, ev := range s.insertLocked(t) {
		s.detachLocked(ev)
		ch.removed = append(ch.removed, removal{toast: ev, reason: ReasonEvicted})
	}
	if _, visible := s.index[t.ID]; visible && t.Duration.AutoDismiss() {
		s.scheduler.Schedule(t.ID, t.Duration.Std(), s.expire)
	}

	snap, subs := s.commitLocked()
	s.mu.Unlock()

	s.publish(ch, snap, subs)
	return t, nil
}

// insertLocked applies the capacity policy and returns the evicted toasts.
func (s *Store) insertLocked(t Toast) []Toast {
	evicted := s.buckets[t.Position].insert(t)
	if s.cfg.Policy != Global {
		return evicted
	}
	total := 0
	for _, b := range s.buckets {
		total += b.len()
	}
	for ; total > s.cfg.MaxToasts; total-- {
		oldest, ok := s.oldestLocked()
		if !ok {
			break
		}
		s.buckets[oldest.Position].remove(oldest.ID)
		evicted = append(evicted, oldest)
	}
	return evicted
}

func (s *Store) oldestLocked() (Toast, bool) {
	var (
		oldest Toast
		found  bool
	)
	for _, b := range s.buckets {
		if t, ok := b.oldest(); ok && (!found || t.Seq < oldest.Seq) {
			oldest, found = t, true
		}
	}
	return oldest, found
}

// Remove dismisses the toast with id. It reports whether the toast was
// visible; removing an unknown or already removed id is a no-op.
func (s *Store) Remove(id string) bool {
	return s.remove(id, ReasonDismissed)
}

// expire is the timer callback.
func (s *Store) expire(id string) {
	s.remove(id, ReasonExpired)
}

func (s *Store) remove(id string, reason Reason) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	pos, ok := s.index[id]
	if !ok {
		// Already removed: a late timer or a repeated dismiss.
		s.scheduler.Cancel(id)
		s.mu.Unlock()
		return false
	}
	t, _ := s.buckets[pos].remove(id)
	s.detachLocked(t)

	snap, subs := s.commitLocked()
	s.mu.Unlock()

	s.publish(change{removed: []removal{{toast: t, reason: reason}}}, snap, subs)
	return true
}

// Clear removes every toast at the given positions, or everywhere when
// none are given. Unknown positions are ignored. It returns the number of
// toasts removed.
func (s *Store) Clear(positions ...Position) int {
	if len(positions) == 0 {
		positions = Positions()
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	var ch change
	for _, pos := range positions {
		b, ok := s.buckets[pos]
		if !ok {
			continue
		}
		for _, t := range b.clear() {
			s.detachLocked(t)
			ch.removed = append(ch.removed, removal{toast: t, reason: ReasonCleared})
		}
	}
	if ch.empty() {
		s.mu.Unlock()
		return 0
	}
	snap, subs := s.commitLocked()
	s.mu.Unlock()

	s.publish(ch, snap, subs)
	return len(ch.removed)
}

// detachLocked is the common tail of every removal: the toast is already
// out of its bucket, drop the reverse index entry and the timer.
func (s *Store) detachLocked(t Toast) {
	delete(s.index, t.ID)
	s.scheduler.Cancel(t.ID)
}

// Snapshot returns a copy of the visible toasts.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:   s.version,
		Positions: make(map[Position][]Toast, len(s.buckets)),
	}
	for pos, b := range s.buckets {
		snap.Positions[pos] = b.snapshot()
	}
	return snap
}

// Len returns the number of visible toasts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}

// Subscribe registers fn to receive a snapshot after every change.
// fn runs synchronously on the goroutine that made the change, after the
// store lock is released, so it may call back into the store. When changes
// race across goroutines, snapshots can arrive out of order; compare
// Snapshot.Version to discard stale ones.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// commitLocked bumps the version and captures what publish needs.
func (s *Store) commitLocked() (Snapshot, []func(Snapshot)) {
	s.version++
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, id := range sortedKeys(s.subscribers) {
		subs = append(subs, s.subscribers[id])
	}
	return s.snapshotLocked(), subs
}

func (s *Store) publish(ch change, snap Snapshot, subs []func(Snapshot)) {
	ctx := context.Background()
	for _, t := range ch.shown {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "toast shown",
			logger.Component("toast"),
			logger.ToastID(t.ID),
			logger.Position(string(t.Position)),
			slog.String("type", string(t.Type)),
			logger.Duration(t.Duration.String()),
		)
		for _, o := range s.observers {
			o.ToastShown(t)
		}
	}
	for _, r := range ch.removed {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "toast removed",
			logger.Component("toast"),
			logger.ToastID(r.toast.ID),
			logger.Position(string(r.toast.Position)),
			logger.Reason(r.reason.String()),
		)
		for _, o := range s.observers {
			o.ToastRemoved(r.toast, r.reason)
		}
	}
	for _, fn := range subs {
		fn(snap)
	}
}

// Close cancels every timer and turns Add, Remove and Clear into no-ops
// (Add returns ErrStoreClosed). Visible toasts stay readable through
// Snapshot. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.scheduler.CancelAll()
	clear(s.subscribers)

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast store closed",
		logger.Component("toast"),
		slog.Int("visible", len(s.index)),
	)
	return nil
}

// Ping reports ErrStoreClosed once the store has been closed.
func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

func sortedKeys(m map[uint64]func(Snapshot)) []uint64 {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
