package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Config holds the server settings loadable from the environment.
// WriteTimeout defaults to zero because SSE responses stay open.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type options struct {
	Config
	listener   net.Listener
	logger     *slog.Logger
	drainHooks []func()
	startHooks []func(addr string)
}

// Option configures the server.
type Option func(*options)

// WithConfig applies every non-zero field of cfg.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Addr != "" {
			o.Addr = cfg.Addr
		}
		if cfg.ReadHeaderTimeout > 0 {
			o.ReadHeaderTimeout = cfg.ReadHeaderTimeout
		}
		if cfg.WriteTimeout > 0 {
			o.WriteTimeout = cfg.WriteTimeout
		}
		if cfg.IdleTimeout > 0 {
			o.IdleTimeout = cfg.IdleTimeout
		}
		if cfg.ShutdownTimeout > 0 {
			o.ShutdownTimeout = cfg.ShutdownTimeout
		}
	}
}

// WithAddr sets the address the server listens on.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.Addr = addr }
}

// WithListener serves on an already bound listener. Addr is ignored.
func WithListener(l net.Listener) Option {
	if l == nil {
		panic("WithListener: nil listener")
	}
	return func(o *options) { o.listener = l }
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(o *options) { o.ShutdownTimeout = d }
}

// WithLogger sets the logger. Without it the server logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDrainHook registers fn to run when shutdown begins, while in-flight
// requests are still being served. Use it to end streaming responses.
func WithDrainHook(fn func()) Option {
	if fn == nil {
		panic("WithDrainHook: nil hook")
	}
	return func(o *options) { o.drainHooks = append(o.drainHooks, fn) }
}

// WithStartHook registers fn to run once the listener is bound. It receives
// the actual listen address.
func WithStartHook(fn func(addr string)) Option {
	if fn == nil {
		panic("WithStartHook: nil hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, fn) }
}
