package handlers

import (
	"errors"
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{})

	w := env.do(t, http.MethodGet, "/api/health", nil)
	resp := decode(t, w)
	if w.Code != http.StatusOK || resp["status"] != "ok" || resp["database"] != "ok" {
		t.Fatalf("unexpected health %v", resp)
	}

	env.store.pingErr = errors.New("connection refused")
	w = env.do(t, http.MethodGet, "/api/health", nil)
	if decode(t, w)["database"] != "error" {
		t.Fatalf("expected database error status")
	}
}
