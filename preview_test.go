package navmenu

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestPreview(t *testing.T) (*PreviewHandler, *prometheus.Registry) {
	t.Helper()

	m, err := ParseMenu([]byte(testMenu))
	require.NoError(t, err)

	r, err := NewRenderer()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()

	h, err := NewPreviewHandler(r, m, "/docs", reg)
	require.NoError(t, err)

	return h, reg
}

func TestPreviewRendersMenuForPath(t *testing.T) {
	t.Parallel()

	h, _ := newTestPreview(t)

	req := httptest.NewRequest(http.MethodGet, "/docs/guides/install", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	install := doc.Find(`a[href="/docs/guides/install"]`)
	require.True(t, install.HasClass("active"))
	require.True(t, doc.Find(`a[href="/docs/guides"]`).HasClass("lvl0-active"))
	unlinked := doc.Find("p.nav-menu__item")
	require.Equal(t, 2, unlinked.Length())
	require.Equal(t, "Coming soon", unlinked.Last().Text())

	require.Equal(t, 1.0, testutil.ToFloat64(h.renders.WithLabelValues("ok")))
}

func TestPreviewServesMetrics(t *testing.T) {
	t.Parallel()

	h, _ := newTestPreview(t)

	h.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/docs/", nil))

	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(),
		`navmenu_preview_renders_total{outcome="ok"} 1`)
}

func TestPreviewRejectsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	h, reg := newTestPreview(t)

	_, err := NewPreviewHandler(h.renderer, h.menu, "", reg)
	require.Error(t, err)
}

func TestPreviewCountsRenderErrors(t *testing.T) {
	t.Parallel()

	m, err := ParseMenu([]byte(testMenu))
	require.NoError(t, err)

	// Without a "menu" template every render fails.
	broken := &Renderer{
		tpl: template.Must(template.New("templates").Parse(
			`{{define "menu_item"}}{{end}}`)),
	}

	h, err := NewPreviewHandler(broken, m, "/docs", prometheus.NewRegistry())
	require.NoError(t, err)

	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/guides", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "nav-menu__item")
	require.Equal(t, 1.0, testutil.ToFloat64(h.renders.WithLabelValues("error")))
	require.Equal(t, 0.0, testutil.ToFloat64(h.renders.WithLabelValues("ok")))
}
