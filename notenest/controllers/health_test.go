package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeStore struct {
	err error
}

func (f fakeStore) Ping(context.Context) error {
	return f.err
}

func TestHealthCheck(t *testing.T) {
	hc := NewHealthController(fakeStore{})
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	hc.HealthCheck(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	expectedBody := `{"status": "ok"}`
	if rr.Body.String() != expectedBody {
		t.Errorf("expected body %q, got %q", expectedBody, rr.Body.String())
	}

	if rr.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %v", rr.Header().Get("Content-Type"))
	}
}

func TestHealthCheckStoreDown(t *testing.T) {
	hc := NewHealthController(fakeStore{err: errors.New("dial tcp: connection refused")})
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	hc.HealthCheck(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
	expectedBody := "{\"error\":\"Store unavailable\"}\n"
	if rr.Body.String() != expectedBody {
		t.Errorf("expected body %q, got %q", expectedBody, rr.Body.String())
	}
}

func TestPing(t *testing.T) {
	hc := NewHealthController(fakeStore{})
	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	hc.Ping(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "pong\n" {
		t.Errorf("expected 200 pong, got %d %q", rr.Code, rr.Body.String())
	}
}
