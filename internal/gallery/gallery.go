// Package gallery holds the demo's catalog of toast usage examples. Each
// example carries the options it shows and the Go snippet that produces it.
package gallery

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

//go:embed examples.yaml
var embeddedCatalog []byte

// Preset is the toast an example shows, in catalog form.
type Preset struct {
	Title    string          `yaml:"title"`
	Message  string          `yaml:"message"`
	Type     string          `yaml:"type"`
	Position string          `yaml:"position"`
	Duration string          `yaml:"duration"`
	Closable *bool           `yaml:"closable"`
	Action   *toastui.Action `yaml:"action"`
}

// Example is one catalog entry.
type Example struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Toast       Preset `yaml:"toast"`
	Code        string `yaml:"code"`
}

// Options converts the example into toast options.
func (e Example) Options() (toast.Options, error) {
	s := e.Toast
	opts := toast.Options{
		Title:    s.Title,
		Message:  s.Message,
		Type:     toast.Type(s.Type),
		Position: toast.Position(s.Position),
		Closable: s.Closable,
	}
	if s.Duration != "" {
		d, err := toast.ParseDuration(s.Duration)
		if err != nil {
			return toast.Options{}, fmt.Errorf("%w %q: duration: %w", ErrInvalidExample, e.Slug, err)
		}
		opts.Duration = &d
	}
	if s.Action != nil {
		opts.Action = *s.Action
	}
	return opts, nil
}

// Catalog is an ordered list of examples.
type Catalog []Example

// Find returns the example with the given slug.
func (c Catalog) Find(slug string) (Example, error) {
	for _, e := range c {
		if e.Slug == slug {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", ErrExampleNotFound, slug)
}

// Parse decodes a YAML catalog. Slugs must be unique and every example must
// convert to valid options.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	seen := make(map[string]struct{}, len(c))
	for i, e := range c {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("%w #%d %q: %w", ErrInvalidExample, i, e.Slug, err)
		}
		if _, dup := seen[e.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidExample, e.Slug)
		}
		seen[e.Slug] = struct{}{}
		if _, err := e.Options(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// validate rejects catalog typos instead of letting the store coerce them.
func (e Example) validate() error {
	s := e.Toast
	return validator.Apply(
		validator.RequiredString("slug", e.Slug),
		validator.RequiredString("name", e.Name),
		validator.RequiredString("toast.message", s.Message),
		validator.When(s.Type != "", validator.OneOf("toast.type", toast.Type(s.Type), toast.Types())),
		validator.When(s.Position != "", validator.OneOf("toast.position", toast.Position(s.Position), toast.Positions())),
	)
}

var loadEmbedded = sync.OnceValues(func() (Catalog, error) {
	return Parse(embeddedCatalog)
})

// Load returns the embedded catalog.
func Load() (Catalog, error) {
	return loadEmbedded()
}
