// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets scheme", raw: "pdm.local:8080", want: "http://pdm.local:8080"},
		{name: "https kept", raw: "https://pdm.example.com/", want: "https://pdm.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetSyncRecord ───────────────────────────────────────────────────────────

func TestGetSyncRecord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/records/f-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SyncRecord{
			ID:                    "f-1",
			Version:               3,
			CheckedOutBy:          "alice",
			RelativePath:          "parts/bracket.sldprt",
			CheckedOutByMachineID: "M1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetSyncRecord(context.Background(), "f-1")

	require.NoError(t, err)
	assert.Equal(t, "f-1", got.ID)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, models.SourceAuthoritative, got.Source)
}

func TestGetSyncRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such record"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetSyncRecord(context.Background(), "missing")

	require.ErrorIs(t, err, ErrNotFound)
}

// ── Checkout ────────────────────────────────────────────────────────────────

func TestCheckout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/records/checkout", r.URL.Path)

		var req models.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "f-1", req.FileID)
		assert.Equal(t, "alice", req.UserID)
		assert.Equal(t, "M2", req.MachineID)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Checkout(context.Background(), "f-1", "alice", "M2")

	require.NoError(t, err)
}

func TestCheckout_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("already checked out by bob"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Checkout(context.Background(), "f-1", "alice", "M2")

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already checked out by bob")
}

// ── Checkin ─────────────────────────────────────────────────────────────────

func TestCheckin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/records/checkin", r.URL.Path)

		var req models.CheckinRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "f-1", req.FileID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CheckinResponse{Success: true, NewVersion: 4})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	version, err := a.Checkin(context.Background(), models.CheckinRequest{FileID: "f-1", UserID: "alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
}

func TestCheckin_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Checkin(context.Background(), models.CheckinRequest{FileID: "f-1", UserID: "alice"})

	require.ErrorIs(t, err, ErrRemoteUnavailable)
}

// ── IsMachineOnline ─────────────────────────────────────────────────────────

func TestIsMachineOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/presence", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("user_id"))
		assert.Equal(t, "M1", r.URL.Query().Get("machine_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PresenceResponse{Online: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	online, err := a.IsMachineOnline(context.Background(), "alice", "M1")

	require.NoError(t, err)
	assert.True(t, online)
}

// ── ForceRelease / DeleteRecord ─────────────────────────────────────────────

func TestForceRelease_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("admin role required"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ForceRelease(context.Background(), "f-1", "mallory")

	require.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteRecord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/records/f-9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteRecord(context.Background(), "f-9")

	require.NoError(t, err)
}

func TestListRecords_TagsAuthoritative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.SyncRecord{
			{ID: "f-1", RelativePath: "a.sldprt"},
			{ID: "f-2", RelativePath: "b.sldprt"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	records, err := a.ListRecords(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, models.SourceAuthoritative, r.Source)
	}
}
