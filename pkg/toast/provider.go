package toast

import (
	"context"

	"github.com/dmitrymomot/toastkit/pkg/broadcast"
)

// Provider is the entry point application code uses. It owns one Store for
// its lifetime and mirrors every snapshot into a broadcaster for streaming
// renderers.
type Provider struct {
	store  *Store
	stream *broadcast.MemoryBroadcaster[Snapshot]
	unsub  func()
}

// NewProvider creates a provider and its store. Call Close when done.
func NewProvider(cfg Config, opts ...StoreOption) *Provider {
	store := NewStore(cfg, opts...)
	p := &Provider{
		store:  store,
		stream: broadcast.NewMemoryBroadcaster[Snapshot](1),
	}
	p.unsub = store.Subscribe(func(s Snapshot) {
		_ = p.stream.Broadcast(context.Background(), broadcast.Message[Snapshot]{Data: s})
	})
	return p
}

// Show displays a toast and returns its id.
// It fails with ErrInvalidToast when the message is empty or the duration
// is negative.
func (p *Provider) Show(opts Options) (string, error) {
	t, err := p.store.Add(opts)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// Info shows an info toast with default settings.
func (p *Provider) Info(message string) (string, error) {
	return p.Show(Options{Message: message, Type: TypeInfo})
}

// Success shows a success toast with default settings.
func (p *Provider) Success(message string) (string, error) {
	return p.Show(Options{Message: message, Type: TypeSuccess})
}

// Warning shows a warning toast with default settings.
func (p *Provider) Warning(message string) (string, error) {
	return p.Show(Options{Message: message, Type: TypeWarning})
}

// Error shows an error toast with default settings.
func (p *Provider) Error(message string) (string, error) {
	return p.Show(Options{Message: message, Type: TypeError})
}

// Dismiss removes a toast. Unknown ids are ignored.
func (p *Provider) Dismiss(id string) {
	p.store.Remove(id)
}

// ClearAll removes every toast, or only those at the given positions.
func (p *Provider) ClearAll(positions ...Position) {
	p.store.Clear(positions...)
}

// Snapshot returns the visible toasts per position.
func (p *Provider) Snapshot() Snapshot {
	return p.store.Snapshot()
}

// Subscribe registers a synchronous renderer callback. See Store.Subscribe.
func (p *Provider) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return p.store.Subscribe(fn)
}

// Stream returns a subscriber that receives the latest snapshot after every
// change. Slow readers skip intermediate snapshots. The subscription ends
// with ctx.
func (p *Provider) Stream(ctx context.Context) broadcast.Subscriber[Snapshot] {
	return p.stream.Subscribe(ctx)
}

// Store exposes the underlying store.
func (p *Provider) Store() *Store {
	return p.store
}

// Ping fails with ErrStoreClosed after Close. It fits readiness probes.
func (p *Provider) Ping(ctx context.Context) error {
	return p.store.Ping(ctx)
}

// Close tears the provider down: timers are cancelled and streams end.
func (p *Provider) Close() error {
	p.unsub()
	if err := p.store.Close(); err != nil {
		return err
	}
	return p.stream.Close()
}
