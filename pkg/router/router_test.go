package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentaldeploy/pkg/router"
)

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(body)) }
}

func TestGetAndNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/readyz/", "ready", ok("ready"))
	r.Get("healthz", "health", ok("alive"))
	r.Get("/hidden", "", ok("hidden"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())

	p, found := r.Path("health")
	require.True(t, found)
	assert.Equal(t, "/healthz", p)

	assert.Equal(t, []router.Route{
		{Name: "health", Path: "/healthz"},
		{Name: "ready", Path: "/readyz"},
	}, r.Routes())
}

func TestGetRejectsOtherMethods(t *testing.T) {
	r := router.New()
	r.Get("/status", "status", ok("{}"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	r.Use(mw("global"))
	r.Get("/x", "x", ok("x"), mw("first"), mw("second"))

	r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, []string{"global", "first", "second"}, order)
}

func TestURL(t *testing.T) {
	r := router.New()
	r.Get("/reports/{name}", "report", ok(""))

	u, err := r.URL("report", map[string]string{"name": "latest.json"})
	require.NoError(t, err)
	assert.Equal(t, "/reports/latest.json", u)

	_, err = r.URL("report", nil)
	assert.Error(t, err)

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}
