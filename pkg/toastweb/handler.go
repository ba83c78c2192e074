package toastweb

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

// Handler serves the toast API for a single provider.
type Handler struct {
	provider *toast.Provider
	logger   *slog.Logger
	basePath string
	router   chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for request failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithBasePath tells the handler where it is mounted, so rendered close
// buttons point back at it. Defaults to toastui.DefaultBasePath.
func WithBasePath(path string) Option {
	return func(h *Handler) {
		if path != "" {
			h.basePath = path
		}
	}
}

// New builds the handler and its routes.
func New(p *toast.Provider, opts ...Option) *Handler {
	h := &Handler{
		provider: p,
		logger:   logger.Discard(),
		basePath: toastui.DefaultBasePath,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("toastweb"))

	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.show)
	r.Delete("/", h.clear)
	r.Get("/stream", h.stream)
	r.Delete("/{id}", h.dismiss)
	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Middleware attaches p to every request context.
func Middleware(p *toast.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(toast.WithProvider(r.Context(), p)))
		})
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.Snapshot())
}

type showResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeShowRequest(r)
	if err != nil {
		h.logger.DebugContext(r.Context(), "rejected toast request", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	id, err := h.provider.Show(opts)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, showResponse{ID: id})
	case validator.IsValidationError(err):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  toast.ErrInvalidToast.Error(),
			Fields: validator.ExtractValidationErrors(err).Map(),
		})
	case errors.Is(err, toast.ErrStoreClosed):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		h.logger.ErrorContext(r.Context(), "failed to show toast", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (h *Handler) dismiss(w http.ResponseWriter, r *http.Request) {
	h.provider.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// clear removes every toast, or only those at the positions named in the
// query. Unknown positions are ignored.
func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()["position"]
	if len(values) == 0 {
		h.provider.ClearAll()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	positions := make([]toast.Position, 0, len(values))
	for _, v := range values {
		if pos := toast.Position(v); pos.Valid() {
			positions = append(positions, pos)
		}
	}
	if len(positions) > 0 {
		h.provider.ClearAll(positions...)
	}
	w.WriteHeader(http.StatusNoContent)
}

// stream sends every region once, then re-renders the regions whose
// contents changed on each snapshot until the client goes away.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sub := h.provider.Stream(ctx)
	defer sub.Close()

	sse := datastar.NewSSE(w, r)
	uiOpts := []toastui.Option{toastui.WithBasePath(h.basePath)}

	var last toast.Snapshot
	send := func(snap toast.Snapshot, all bool) bool {
		if !all && snap.Version <= last.Version {
			return true
		}
		for _, pos := range toast.Positions() {
			if !all && sameIDs(last.At(pos), snap.At(pos)) {
				continue
			}
			if err := sse.PatchElementTempl(toastui.Region(pos, snap.At(pos), uiOpts...)); err != nil {
				h.logger.DebugContext(ctx, "toast stream closed", logger.Error(err))
				return false
			}
		}
		last = snap
		return true
	}

	if !send(h.provider.Snapshot(), true) {
		return
	}

	msgs := sub.Receive(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok || !send(msg.Data, false) {
				return
			}
		}
	}
}

func sameIDs(a, b []toast.Toast) bool {
	return slices.EqualFunc(a, b, func(x, y toast.Toast) bool { return x.ID == y.ID })
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
