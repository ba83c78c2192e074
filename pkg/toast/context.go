package toast

import "context"

type providerKey struct{}

// WithProvider attaches p to ctx.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider attached to ctx.
func FromContext(ctx context.Context) (*Provider, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	return p, ok && p != nil
}

// Show displays a toast through the provider in ctx.
func Show(ctx context.Context, opts Options) (string, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return "", ErrNoProvider
	}
	return p.Show(opts)
}

// Info shows an info toast through the provider in ctx.
//
//	toast.Info(ctx, "New features available")
func Info(ctx context.Context, message string) (string, error) {
	return Show(ctx, Options{Message: message, Type: TypeInfo})
}

// Success shows a success toast through the provider in ctx.
//
//	toast.Success(ctx, "Changes saved!")
func Success(ctx context.Context, message string) (string, error) {
	return Show(ctx, Options{Message: message, Type: TypeSuccess})
}

// Warning shows a warning toast through the provider in ctx.
func Warning(ctx context.Context, message string) (string, error) {
	return Show(ctx, Options{Message: message, Type: TypeWarning})
}

// Error shows an error toast through the provider in ctx.
func Error(ctx context.Context, message string) (string, error) {
	return Show(ctx, Options{Message: message, Type: TypeError})
}

// Dismiss removes a toast through the provider in ctx.
func Dismiss(ctx context.Context, id string) error {
	p, ok := FromContext(ctx)
	if !ok {
		return ErrNoProvider
	}
	p.Dismiss(id)
	return nil
}

// ClearAll clears toasts through the provider in ctx.
func ClearAll(ctx context.Context, positions ...Position) error {
	p, ok := FromContext(ctx)
	if !ok {
		return ErrNoProvider
	}
	p.ClearAll(positions...)
	return nil
}
