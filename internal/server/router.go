// internal/server/router.go
//
// HTTP surface.
//
// Routes
// ------
//
//	GET  /healthz         → {"status":"ok"}
//	GET  /pages/{slug...} → vue-meta document for a stored descriptor
//	POST /render          → vue-meta document for the descriptor in the body
//	GET  /hid?value=…     → {"value":…,"hid":…}
//	GET  /metrics         → Prometheus exposition
//
// Errors are JSON `{"error": "..."}` bodies.  Status codes: unknown page
// 404, malformed slug 400, undecodable or invalid descriptor 422, oversize
// body 413, anything else 500 (logged).
package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/headmeta/internal/config"
	"github.com/yanizio/headmeta/internal/head"
	"github.com/yanizio/headmeta/internal/metadata"
	"github.com/yanizio/headmeta/internal/metrics"
	"github.com/yanizio/headmeta/internal/middleware"
	"github.com/yanizio/headmeta/internal/page"
)

// maxBodyBytes caps POST /render descriptors.
const maxBodyBytes = 1 << 20

// Deps are the collaborators the handlers need.
type Deps struct {
	Store page.Store
	// Site returns the current site defaults.  It is called per request so
	// a config reload takes effect without a restart.
	Site       func() config.Site
	Log        *zap.SugaredLogger
	// ForceHTTPS reports whether plain-HTTP requests are redirected.  Like
	// Site it is read per request; nil means never.
	ForceHTTPS func() bool
	Extensions []metadata.Extension
}

type handlers struct {
	Deps
}

// NewRouter wires middleware and routes.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = zap.S()
	}
	if d.Site == nil {
		d.Site = func() config.Site { return config.Site{} }
	}
	h := &handlers{Deps: d}

	r := chi.NewRouter()
	r.Use(
		chiMid.RequestID,
		chiMid.RealIP,
		middleware.RequestLogger(d.Log),
		chiMid.Recoverer,
		middleware.ForceHTTPS(d.ForceHTTPS),
		middleware.Security,
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", h.healthz)
	r.Get("/pages/*", h.getPage)
	r.Post("/render", h.render)
	r.Get("/hid", h.hid)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

/*──────────────────────────── handlers ────────────────────────────────────*/

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) getPage(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		h.fail(w, r, "store", errors.New("no page store configured"))
		return
	}
	p, err := h.Store.Get(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		h.fail(w, r, "store", err)
		return
	}
	h.serveDocument(w, r, "store", p)
}

func (h *handlers) render(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.fail(w, r, "request", err)
		return
	}
	p, err := page.Decode(bytes.NewReader(raw))
	if err != nil {
		h.fail(w, r, "request", err)
		return
	}
	h.serveDocument(w, r, "request", p)
}

func (h *handlers) hid(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("value") {
		writeJSONError(w, http.StatusBadRequest, "missing value parameter")
		return
	}
	v := q.Get("value")
	writeJSON(w, http.StatusOK, map[string]string{"value": v, "hid": head.Hid(v)})
}

func (h *handlers) serveDocument(w http.ResponseWriter, r *http.Request, source string, p *page.Page) {
	doc, err := page.Render(p, h.Site(), h.Extensions...)
	if err != nil {
		h.fail(w, r, source, err)
		return
	}
	body, err := doc.MarshalJSON()
	if err != nil {
		h.fail(w, r, source, err)
		return
	}
	metrics.ObserveDocument(source, doc.Count())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

/*──────────────────────────── errors ──────────────────────────────────────*/

// fail maps err to a status, counts it, and writes the JSON error body.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, source string, err error) {
	status, reason := classify(err)
	metrics.RenderErrors.WithLabelValues(reason).Inc()

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.Log.Errorw("request failed",
			"source", source,
			"path", r.URL.Path,
			"request_id", chiMid.GetReqID(r.Context()),
			"err", err,
		)
		msg = "internal error"
	}
	writeJSONError(w, status, msg)
}

func classify(err error) (status int, reason string) {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, page.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, page.ErrInvalidSlug):
		return http.StatusBadRequest, "invalid_slug"
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, page.ErrInvalidPage), errors.Is(err, head.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, "invalid_page"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := head.EncodeJSON(v)
	if err != nil {
		status, body = http.StatusInternalServerError, []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
