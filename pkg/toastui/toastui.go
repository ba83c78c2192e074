// Package toastui renders toast regions as HTML templ components.
//
// Each position gets a fixed container, #toast-<position>, so streaming
// renderers can patch one region at a time:
//
//	sse.PatchElementTempl(toastui.Region(toast.TopRight, snap.At(toast.TopRight)))
//
// Close buttons call the dismiss endpoint through datastar @delete action.
package toastui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// DefaultBasePath is where the toast HTTP API is mounted.
const DefaultBasePath = "/toasts"

type config struct {
	basePath string
}

// Option configures rendering.
type Option func(*config)

// WithBasePath sets the URL prefix used by close buttons.
func WithBasePath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.basePath = strings.TrimRight(path, "/")
		}
	}
}

func newConfig(opts []Option) config {
	c := config{basePath: DefaultBasePath}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// RegionID returns the DOM id of the container for pos.
func RegionID(pos toast.Position) string {
	return "toast-" + string(pos)
}

// Region renders the container for one position with its toasts, oldest
// first.
func Region(pos toast.Position, toasts []toast.Toast, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s" class="toast-region toast-region--%s" aria-live="polite">`,
			templ.EscapeString(RegionID(pos)), templ.EscapeString(string(pos))); err != nil {
			return err
		}
		for _, t := range toasts {
			if err := Item(t, opts...).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Regions renders every position from a snapshot.
func Regions(snap toast.Snapshot, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="toast-container">`); err != nil {
			return err
		}
		for _, pos := range toast.Positions() {
			if err := Region(pos, snap.At(pos), opts...).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Item renders a single toast.
func Item(t toast.Toast, opts ...Option) templ.Component {
	cfg := newConfig(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="toast-item-%s" class="toast toast--%s" role="%s">`,
			templ.EscapeString(t.ID), templ.EscapeString(string(t.Type)), role(t.Type))
		if t.Title != "" {
			fmt.Fprintf(&b, `<strong class="toast__title">%s</strong>`, templ.EscapeString(t.Title))
		}
		fmt.Fprintf(&b, `<p class="toast__message">%s</p>`, templ.EscapeString(t.Message))
		if a, ok := t.Action.(Action); ok && a.Label != "" {
			fmt.Fprintf(&b, `<a class="toast__action" href="%s">%s</a>`,
				templ.EscapeString(string(templ.URL(a.URL))), templ.EscapeString(a.Label))
		}
		if t.Closable {
			fmt.Fprintf(&b, `<button type="button" class="toast__close" aria-label="Close" data-on:click="@delete('%s/%s')">&times;</button>`,
				templ.EscapeString(cfg.basePath), templ.EscapeString(t.ID))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Action is the action payload toastui knows how to draw: a labelled link.
type Action struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Errors and warnings interrupt screen readers; the rest wait their turn.
func role(t toast.Type) string {
	if t == toast.TypeError || t == toast.TypeWarning {
		return "alert"
	}
	return "status"
}
