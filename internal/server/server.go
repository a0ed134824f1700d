// Package server exposes a method registry over HTTP.
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/azint/methodreg/internal/metrics"
	"github.com/azint/methodreg/pkg/method"
)

type handler struct {
	reg *method.Registry
}

// NewRouter returns the HTTP catalog for reg. /metrics is served from col.
func NewRouter(reg *method.Registry, col *metrics.Collector, logger *zap.Logger) http.Handler {
	h := &handler{reg: reg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))

	r.Get("/healthz", h.healthz)
	r.Route("/methods", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/select", h.selectMethods)
		r.Get("/legacy", h.legacy)
		r.Get("/parse", h.parse)
	})
	r.Method(http.MethodGet, "/metrics", col.Handler())
	return r
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{"status": "ok", "methods": h.reg.Len()}, http.StatusOK)
}

// GET /methods[?dim=N]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	dim, ok, err := dimParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	all := h.reg.All()
	if ok {
		filtered := all[:0]
		for _, d := range all {
			if d.Dim == dim {
				filtered = append(filtered, d)
			}
		}
		all = filtered
	}
	writeJSON(w, newMethodList(all), http.StatusOK)
}

// GET /methods/select?dim=N[&split=S][&algo=A][&impl=I]
func (h *handler) selectMethods(w http.ResponseWriter, r *http.Request) {
	dim, ok, err := dimParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "dim is required")
		return
	}
	q := r.URL.Query()
	found := h.reg.Select(method.Query{
		Dim:   dim,
		Split: q.Get("split"),
		Algo:  q.Get("algo"),
		Impl:  q.Get("impl"),
	})
	writeJSON(w, newMethodList(found), http.StatusOK)
}

// GET /methods/legacy?dim=N&name=NAME
func (h *handler) legacy(w http.ResponseWriter, r *http.Request) {
	dim, ok, err := dimParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "dim is required")
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	writeJSON(w, newMethodList(h.reg.SelectLegacy(dim, name)), http.StatusOK)
}

// GET /methods/parse?q=TEXT[&dim=N]
func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	dim, ok, err := dimParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if !ok {
		dim = 1
	}
	text := r.URL.Query().Get("q")
	if text == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	d, found := h.reg.Parse(text, dim)
	if !found {
		writeError(w, http.StatusNotFound, "no method matches %q for %dd integration", text, dim)
		return
	}
	writeJSON(w, newDescriptor(d), http.StatusOK)
}

// dimParam reads the optional dim query parameter. "2" and "2d" are accepted.
func dimParam(r *http.Request) (dim int, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get("dim"))
	if raw == "" {
		return 0, false, nil
	}
	dim, err = strconv.Atoi(strings.TrimSuffix(strings.ToLower(raw), "d"))
	if err != nil || dim < 1 {
		return 0, false, fmt.Errorf("invalid dim %q", raw)
	}
	return dim, true, nil
}

// accessLog logs one line per request.
func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("requestId", middleware.GetReqID(r.Context())),
					zap.String("httpMethod", r.Method),
					zap.String("uri", r.URL.Path),
					zap.String("query", r.URL.RawQuery),
					zap.Int("status", ww.Status()),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Duration("lat", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
