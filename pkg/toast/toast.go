package toast

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Type is the severity of a toast.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Types lists every recognised toast type.
func Types() []Type {
	return []Type{TypeInfo, TypeSuccess, TypeWarning, TypeError}
}

// Valid reports whether t is a recognised type.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

// ParseType converts loosely typed input into a Type.
// Unknown values become TypeInfo.
func ParseType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return TypeInfo
	}
	return t
}

func (t *Type) UnmarshalText(b []byte) error {
	*t = ParseType(string(b))
	return nil
}

// Position is the screen anchor a toast is stacked at.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"

	DefaultPosition = TopRight
)

// Positions lists the six anchors in rendering order.
func Positions() []Position {
	return []Position{TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight}
}

// Valid reports whether p is one of the six anchors.
func (p Position) Valid() bool {
	switch p {
	case TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight:
		return true
	}
	return false
}

// ParsePosition converts loosely typed input into a Position.
// Unknown values become DefaultPosition.
func ParsePosition(s string) Position {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return DefaultPosition
	}
	return p
}

func (p *Position) UnmarshalText(b []byte) error {
	*p = ParsePosition(string(b))
	return nil
}

// Duration is how long a toast stays visible before it is removed
// automatically. The zero value is an immediate dismissal; use
// NoAutoDismiss for toasts that stay until removed explicitly.
type Duration struct {
	ms    int64
	never bool
}

// NoAutoDismiss keeps a toast on screen until it is dismissed, cleared or
// evicted.
var NoAutoDismiss = Duration{never: true}

// Millis returns a Duration of ms milliseconds.
func Millis(ms int64) Duration {
	return Duration{ms: ms}
}

// After converts d into a Duration, truncated to milliseconds.
func After(d time.Duration) Duration {
	return Duration{ms: d.Milliseconds()}
}

// AutoDismiss reports whether the toast has a timer.
func (d Duration) AutoDismiss() bool {
	return !d.never
}

// Milliseconds returns the delay in milliseconds, or -1 for NoAutoDismiss.
func (d Duration) Milliseconds() int64 {
	if d.never {
		return -1
	}
	return d.ms
}

// Std returns the delay as a time.Duration. Meaningless for NoAutoDismiss.
func (d Duration) Std() time.Duration {
	return time.Duration(d.ms) * time.Millisecond
}

func (d Duration) String() string {
	if d.never {
		return "never"
	}
	return d.Std().String()
}

// MarshalJSON encodes milliseconds, or null for NoAutoDismiss.
func (d Duration) MarshalJSON() ([]byte, error) {
	if d.never {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(d.ms, 10)), nil
}

// UnmarshalJSON accepts a number of milliseconds or null.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = NoAutoDismiss
		return nil
	}
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	*d = Millis(ms)
	return nil
}

// ParseDuration parses form or YAML input: a bare integer is milliseconds,
// "never", "null" and "none" mean NoAutoDismiss, anything else goes through
// time.ParseDuration.
func ParseDuration(s string) (Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "never", "null", "none":
		return NoAutoDismiss, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Millis(ms), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, err
	}
	return After(d), nil
}

// Toast is one visible notification. Values are created by the Store and
// never change afterwards.
type Toast struct {
	ID        string    `json:"id"`
	Seq       uint64    `json:"seq"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	Closable  bool      `json:"closable"`
	Duration  Duration  `json:"duration"`
	Position  Position  `json:"position"`
	CreatedAt time.Time `json:"created_at"`

	// Action is passed through to the renderer untouched.
	Action any `json:"-"`
}
