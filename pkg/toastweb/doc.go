// Package toastweb exposes a toast.Provider over HTTP.
//
// Routes, relative to where the handler is mounted:
//
//	POST   /            show a toast (JSON, datastar signals or form)
//	GET    /            current snapshot as JSON
//	DELETE /            clear all toasts, or ?position=top-left[&position=...]
//	DELETE /{id}        dismiss one toast
//	GET    /stream      datastar SSE stream patching #toast-<position> regions
//
// Typical wiring with chi:
//
//	r := chi.NewRouter()
//	r.Use(toastweb.Middleware(provider))
//	r.Mount("/toasts", toastweb.New(provider))
//
// Middleware attaches the provider to each request context, so handlers can
// call toast.Success(r.Context(), "Saved") directly.
package toastweb
