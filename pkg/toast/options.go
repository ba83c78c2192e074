package toast

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/validator"
)

const (
	DefaultMaxToasts = 5
	DefaultDuration  = 5 * time.Second

	// MaxDurationMillis is the longest finite duration a timer can hold.
	MaxDurationMillis = int64(math.MaxInt64 / int64(time.Millisecond))

	MaxTitleLength   = 200
	MaxMessageLength = 2000
)

// CapacityPolicy decides what MaxToasts bounds.
type CapacityPolicy string

const (
	// PerPosition bounds every position bucket independently.
	PerPosition CapacityPolicy = "per-position"
	// Global bounds the total across all buckets; the oldest toast anywhere
	// is evicted first.
	Global CapacityPolicy = "global"
)

func (c *CapacityPolicy) UnmarshalText(b []byte) error {
	switch CapacityPolicy(strings.ToLower(strings.TrimSpace(string(b)))) {
	case Global:
		*c = Global
	default:
		*c = PerPosition
	}
	return nil
}

// Config is fixed at provider creation. It can be loaded from the
// environment with config.Load.
type Config struct {
	MaxToasts int            `env:"TOAST_MAX_TOASTS" envDefault:"5"`
	Position  Position       `env:"TOAST_POSITION" envDefault:"top-right"`
	Duration  time.Duration  `env:"TOAST_DURATION" envDefault:"5s"`
	Policy    CapacityPolicy `env:"TOAST_CAPACITY_POLICY" envDefault:"per-position"`

	// Persistent makes NoAutoDismiss the default for toasts that do not set
	// a duration.
	Persistent bool `env:"TOAST_PERSISTENT" envDefault:"false"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		MaxToasts: DefaultMaxToasts,
		Position:  DefaultPosition,
		Duration:  DefaultDuration,
		Policy:    PerPosition,
	}
}

// normalize replaces zero and unrecognised values with defaults.
func (c Config) normalize() Config {
	if c.MaxToasts <= 0 {
		c.MaxToasts = DefaultMaxToasts
	}
	if !c.Position.Valid() {
		c.Position = DefaultPosition
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Policy != Global {
		c.Policy = PerPosition
	}
	return c
}

func (c Config) defaultDuration() Duration {
	if c.Persistent {
		return NoAutoDismiss
	}
	return After(c.Duration)
}

// Options describes one Show call. Zero fields take defaults: Type info,
// Closable true, Duration from the provider, Position from the provider.
type Options struct {
	Title    string
	Message  string
	Type     Type
	Closable *bool
	Duration *Duration
	Position Position
	Action   any
}

// Bool returns a pointer to v, for Options.Closable.
func Bool(v bool) *bool {
	return &v
}

// For returns a pointer to a Duration of d, for Options.Duration.
func For(d time.Duration) *Duration {
	v := After(d)
	return &v
}

// Persistent returns a pointer to NoAutoDismiss, for Options.Duration.
func Persistent() *Duration {
	v := NoAutoDismiss
	return &v
}

func (o Options) validate() error {
	finite := o.Duration != nil && o.Duration.AutoDismiss()
	var ms int64
	if finite {
		ms = o.Duration.Milliseconds()
	}
	if err := validator.Apply(
		validator.RequiredString("message", o.Message),
		validator.MaxLenString("message", o.Message, MaxMessageLength),
		validator.MaxLenString("title", o.Title, MaxTitleLength),
		validator.When(finite, validator.MinNum("duration", ms, 0)),
		validator.When(finite, validator.MaxNum("duration", ms, MaxDurationMillis)),
	); err != nil {
		return errors.Join(ErrInvalidToast, err)
	}
	return nil
}

// build turns options into a toast without identity. Unknown types and
// positions are coerced to defaults rather than rejected.
func (o Options) build(cfg Config) (Toast, error) {
	if err := o.validate(); err != nil {
		return Toast{}, err
	}

	t := Toast{
		Title:    o.Title,
		Message:  o.Message,
		Type:     ParseType(string(o.Type)),
		Closable: true,
		Duration: cfg.defaultDuration(),
		Position: cfg.Position,
		Action:   o.Action,
	}
	if o.Position != "" {
		t.Position = ParsePosition(string(o.Position))
	}
	if o.Closable != nil {
		t.Closable = *o.Closable
	}
	if o.Duration != nil {
		t.Duration = *o.Duration
	}
	return t, nil
}
