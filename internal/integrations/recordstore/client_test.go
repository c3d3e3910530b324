package recordstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:        srv.URL,
		AnonKey:        "anon-key",
		ServiceRoleKey: "service-key",
		Timeout:        5 * time.Second,
	}, nil, nopLogger{})

	return client, srv
}

func TestClient_Select(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	})

	rows, err := client.Select(context.Background(), "appointment", NewQuery().Eq("date", "2026-06-01"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/rest/v1/appointment", gotReq.URL.Path)
	assert.Equal(t, "eq.2026-06-01", gotReq.URL.Query().Get("date"))
	assert.Equal(t, "*", gotReq.URL.Query().Get("select"))
	// Чтение идёт под anon-ключом
	assert.Equal(t, "anon-key", gotReq.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", gotReq.Header.Get("Authorization"))
}

func TestClient_Insert_UsesServiceRoleKeyAndRepresentation(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":42,"name":"x"}]`))
	})

	var out struct {
		ID int64 `json:"id"`
	}
	err := client.Insert(context.Background(), "appointment", map[string]string{"name": "x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)

	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodPost, gotReq.Method)
	assert.Equal(t, "service-key", gotReq.Header.Get("apikey"))
	assert.Equal(t, "return=representation", gotReq.Header.Get("Prefer"))
	assert.Equal(t, "application/json", gotReq.Header.Get("Content-Type"))
}

func TestClient_Update_ToleratesMissingRepresentation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var out struct {
		ID int64 `json:"id"`
	}
	err := client.Update(context.Background(), "appointment",
		NewQuery().Eq("id", "5"), map[string]string{"status": "approved"}, &out)

	require.NoError(t, err)
	assert.Zero(t, out.ID)
}

func TestClient_Delete(t *testing.T) {
	var gotReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Delete(context.Background(), "appointment", NewQuery().Lt("date", "2026-06-01"))
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodDelete, gotReq.Method)
	assert.Equal(t, "lt.2026-06-01", gotReq.URL.Query().Get("date"))
}

func TestClient_BadStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "JWT expired"})
	})

	_, err := client.Select(context.Background(), "appointment", NewQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "401")
}
