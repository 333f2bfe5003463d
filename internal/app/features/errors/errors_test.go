package errors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	errorsfeature "github.com/dalemusser/tradedesk/internal/app/features/errors"
	"github.com/dalemusser/tradedesk/internal/app/manifest"
	"github.com/dalemusser/tradedesk/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	reg := manifest.NewRegistry()
	for _, name := range manifest.Default().Requires() {
		m := manifest.Module{Name: name, Kind: manifest.KindClient}
		switch name {
		case "myApp.wallets":
			m.View = "/wallets"
		case "myApp.charts.market-depth":
			m.View = "/charts/market-depth"
		}
		reg.MustRegister(m)
	}
	host := manifest.NewHost(reg)
	if err := manifest.Default().Configure(host); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	h := errorsfeature.NewHandler(host, zap.NewNop())
	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {})
	return r
}

func do(r http.Handler, method, target string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNotFound_UnknownPathRedirectsToRoot(t *testing.T) {
	r := newRouter(t)
	for _, p := range []string{"/nope", "/a/b/c", "/wallets/extra"} {
		rec := do(r, http.MethodGet, p)
		if rec.Code != http.StatusFound {
			t.Errorf("%s: status %d, want 302", p, rec.Code)
		}
		rec.AssertRedirect(t, "/")
	}
}

func TestNotFound_DeclaredViewRedirectsToHashAddress(t *testing.T) {
	r := newRouter(t)

	rec := do(r, http.MethodGet, "/wallets")
	rec.AssertRedirect(t, "/#!/wallets")

	rec = do(r, http.MethodHead, "/charts/market-depth")
	rec.AssertRedirect(t, "/#!/charts/market-depth")
}

func TestNotFound_APIAndWritesGetJSON404(t *testing.T) {
	r := newRouter(t)

	rec := do(r, http.MethodGet, "/api/missing")
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, `"error":"not found"`)

	rec = do(r, http.MethodPost, "/wallets")
	rec.AssertStatus(t, http.StatusNotFound)
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("unexpected Location %q", loc)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := newRouter(t)
	rec := do(r, http.MethodPost, "/api/version")
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
	rec.AssertContains(t, "method not allowed")
}
