package navmenu

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PreviewHandler serves the menu fragment as it would be rendered for
// the requested path, and the metrics of the handler on /metrics.
type PreviewHandler struct {
	renderer *Renderer
	menu     Menu
	basePath string
	renders  *prometheus.CounterVec
	mux      *http.ServeMux
}

func NewPreviewHandler(
	renderer *Renderer, menu Menu, basePath string,
	reg *prometheus.Registry,
) (*PreviewHandler, error) {
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navmenu_preview_renders_total",
		Help: "Number of menu fragments rendered by the preview server.",
	}, []string{"outcome"})

	err := reg.Register(renders)
	if err != nil {
		return nil, fmt.Errorf("register render counter: %w", err)
	}

	h := PreviewHandler{
		renderer: renderer,
		menu:     menu,
		basePath: basePath,
		renders:  renders,
		mux:      http.NewServeMux(),
	}

	h.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	h.mux.HandleFunc("GET /", h.serveMenu)

	return &h, nil
}

func (h *PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *PreviewHandler) serveMenu(w http.ResponseWriter, r *http.Request) {
	page := SitePage{
		BasePath: h.basePath,
		Path:     r.URL.Path,
	}

	var buf bytes.Buffer

	err := h.renderer.RenderMenu(&buf, h.menu, 0, page)
	if err != nil {
		h.renders.WithLabelValues("error").Inc()

		slog.Error("failed to render menu",
			"path", r.URL.Path,
			"err", err)

		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	h.renders.WithLabelValues("ok").Inc()

	slog.Debug("rendered menu", "path", r.URL.Path)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, err = buf.WriteTo(w)
	if err != nil {
		slog.Error("failed to write menu response",
			"path", r.URL.Path,
			"err", err)
	}
}
