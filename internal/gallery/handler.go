package gallery

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
)

// Handler serves the gallery page and triggers examples. The provider is
// taken from the request context, see toastweb.Middleware.
type Handler struct {
	catalog   Catalog
	logger    *slog.Logger
	basePath  string
	toastBase string
	router    chi.Router
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithBasePath sets where the gallery is mounted. Defaults to "".
func WithBasePath(path string) HandlerOption {
	return func(h *Handler) { h.basePath = strings.TrimRight(path, "/") }
}

// WithToastBasePath sets where the toast API is mounted. Defaults to
// toastui.DefaultBasePath.
func WithToastBasePath(path string) HandlerOption {
	return func(h *Handler) {
		if path != "" {
			h.toastBase = strings.TrimRight(path, "/")
		}
	}
}

// NewHandler builds the gallery routes for c.
func NewHandler(c Catalog, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog:   c,
		logger:    logger.Discard(),
		toastBase: toastui.DefaultBasePath,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("gallery"))

	r := chi.NewRouter()
	r.Get("/", h.page)
	r.Post("/examples/{slug}", h.show)
	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	var snap toast.Snapshot
	if p, ok := toast.FromContext(r.Context()); ok {
		snap = p.Snapshot()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Page(h.catalog, snap, h.basePath, h.toastBase).Render(r.Context(), w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render gallery", logger.Error(err))
	}
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	e, err := h.catalog.Find(chi.URLParam(r, "slug"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	opts, err := e.Options()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, err := toast.Show(r.Context(), opts)
	switch {
	case err == nil:
		h.logger.DebugContext(r.Context(), "example shown", slog.String("example", e.Slug), logger.ToastID(id))
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, toast.ErrNoProvider):
		h.logger.ErrorContext(r.Context(), "gallery mounted without toast provider", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	}
}
