package httpadapter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "supplierwatch/internal/adapters/http"
	"supplierwatch/internal/adapters/sqlitestore"
	"supplierwatch/internal/services"
)

const testSupplierID = "11234567000149"

func newTestRouter(t *testing.T, opts httpadapter.Options) (http.Handler, *sqlitestore.Store) {
	t.Helper()
	ctx := context.Background()
	store, err := sqlitestore.OpenTestStore(ctx)
	if err != nil {
		t.Fatalf("OpenTestStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := httpadapter.Services{
		Dossier:   services.NewDossierService(store, "disclaimer", nil),
		Ranking:   services.NewRankingService(store),
		Search:    services.NewSearchService(store),
		Alerts:    services.NewAlertFeedService(store),
		Graph:     services.NewGraphService(store, 50),
		Org:       services.NewOrgDashboardService(store),
		Stats:     services.NewStatsService(store),
		Export:    services.NewExportService(),
		Contracts: store,
	}
	if opts.RequestDeadline == 0 {
		opts.RequestDeadline = 5 * time.Second
	}
	return httpadapter.New(svc, opts), store
}

func TestRankingRouteTakesPriorityOverDynamicSupplierID(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/suppliers/ranking", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/suppliers/ranking: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var rows []any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("expected a JSON array body (the ranking route, not the dossier route): %v", err)
	}
}

func TestDossierRouteRejectsInvalidID(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/suppliers/not-a-valid-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 for an invalid company id", rec.Code)
	}
}

func TestDossierRouteNotFound(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/suppliers/"+testSupplierID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for an unknown supplier", rec.Code)
	}
}

func TestHealthzRoute(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSearchRouteValidatesQueryLength(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 for an empty q", rec.Code)
	}
}

func TestPaginationRejectsOutOfBoundsLimit(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/suppliers/ranking?limit=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 for limit=0", rec.Code)
	}
}

func TestExportRouteUnimplementedPDF(t *testing.T) {
	router, store := newTestRouter(t, httpadapter.Options{})
	ctx := context.Background()
	if err := store.InsertSupplier(ctx, sqlitestore.Fixture{SupplierID: testSupplierID, LegalName: "A"}); err != nil {
		t.Fatalf("InsertSupplier: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/suppliers/"+testSupplierID+"/export?format=pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501 for the PDF export stub", rec.Code)
	}
}

func TestRateLimit_BypassHeaderAllowsUnlimitedRequests(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{
		RateLimitPerMin:  1,
		RateLimitWindow:  time.Minute,
		BypassHeaderName: "X-API-Key",
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
		req.Header.Set("X-API-Key", "any-value")
		req.RemoteAddr = "203.0.113.10:12345"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d with bypass header: status = %d, want 200", i, rec.Code)
		}
	}
}

func TestRateLimit_ExceedingCapWithoutBypassYields429(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{
		RateLimitPerMin:  2,
		RateLimitWindow:  time.Minute,
		BypassHeaderName: "X-API-Key",
	})

	remote := "203.0.113.20:54321"
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("3rd request: status = %d, want 429", rec.Code)
	}
}

func TestCORS_DisallowedOriginGetsNoAccessControlHeader(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{CORSAllowOrigins: []string{"https://allowed.example"}})

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no CORS header for a disallowed origin")
	}
}

func TestCORS_AllowedOriginGetsReflectedHeader(t *testing.T) {
	router, _ := newTestRouter(t, httpadapter.Options{CORSAllowOrigins: []string{"https://allowed.example"}})

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	req.Header.Set("Origin", "https://allowed.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "https://allowed.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the allowed origin reflected", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
