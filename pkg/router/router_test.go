package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/ridewithme/pkg/router"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func TestGroupPrefixesAndNames(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	cars := api.Group("/cars")
	cars.Get("/", "cars.index", noop)
	cars.Get("/{id}", "cars.show", noop)

	path, ok := r.Path("cars.show")
	if !ok || path != "/api/cars/{id}" {
		t.Fatalf("Path(cars.show) = %q, %v", path, ok)
	}

	routes := r.Routes()
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
}

func TestURLReversal(t *testing.T) {
	r := router.New()
	r.Get("/api/cars/{id}", "cars.show", noop)

	url, err := r.URL("cars.show", map[string]string{"id": "7"})
	if err != nil || url != "/api/cars/7" {
		t.Fatalf("URL() = %q, %v", url, err)
	}

	if _, err := r.URL("cars.show", nil); err == nil {
		t.Fatal("expected error for missing parameter")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Fatal("expected error for unknown route")
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var hit bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("/api", mw)
	g.Get("/ping", "ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	if !hit {
		t.Fatal("group middleware did not run")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Post("/api/cars", "cars.store", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cars", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET on POST-only route: status = %d", rec.Code)
	}
}
