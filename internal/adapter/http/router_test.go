package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/iho/parkpay/internal/adapter/http/handler"
	"github.com/iho/parkpay/internal/adapter/repository/csvfile"
)

func newRouter(t *testing.T, entryLog string) http.Handler {
	t.Helper()

	return NewRouter(RouterConfig{
		HealthHandler: handler.NewHealthHandler(csvfile.NewEntryRepository(entryLog)),
	})
}

func TestNewRouter_Health(t *testing.T) {
	router := newRouter(t, filepath.Join(t.TempDir(), "plates_log.csv"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_ReadyWithAbsentStore(t *testing.T) {
	// An absent entry log reads as empty, not as a failure.
	router := newRouter(t, filepath.Join(t.TempDir(), "plates_log.csv"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /ready to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_ReadyWithCorruptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plates_log.csv")
	content := "Plate Number,Payment Status,Timestamp\nABC123,0,not-a-time\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed entry log: %v", err)
	}

	router := newRouter(t, path)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected /ready to return 503, got %d", rec.Code)
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	router := newRouter(t, filepath.Join(t.TempDir(), "plates_log.csv"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}
