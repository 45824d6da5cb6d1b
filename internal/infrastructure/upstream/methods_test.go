package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govdataviz/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fred/series/observations", r.URL.Path)
		assert.Equal(t, "GDP", r.URL.Query().Get("series_id"))
		assert.Equal(t, "secret", r.Header.Get("token"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New("fred", time.Second, newTestLogger())
	body, err := c.Get(context.Background(), srv.URL+"/fred/series/observations",
		url.Values{"series_id": {"GDP"}}, WithHeader("token", "secret"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "2020", in["startyear"])
		_, _ = w.Write([]byte(`{"status":"REQUEST_SUCCEEDED"}`))
	}))
	defer srv.Close()

	c := New("bls", time.Second, newTestLogger())
	body, err := c.PostJSON(context.Background(), srv.URL, map[string]string{"startyear": "2020"})
	require.NoError(t, err)
	assert.Contains(t, string(body), "REQUEST_SUCCEEDED")
}

func TestClient_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("x", 500)))
	}))
	defer srv.Close()

	c := New("noaa", time.Second, newTestLogger())
	_, err := c.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "...")
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New("eia", 20*time.Millisecond, newTestLogger())
	_, err := c.Get(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_QueryAppendsToExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("a"))
		assert.Equal(t, "2", r.URL.Query().Get("b"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New("census", time.Second, newTestLogger())
	_, err := c.Get(context.Background(), srv.URL+"?a=1", url.Values{"b": {"2"}})
	require.NoError(t, err)
}

func TestSummarizeBody(t *testing.T) {
	assert.Equal(t, "empty body", SummarizeBody([]byte("   ")))
	assert.Equal(t, "short", SummarizeBody([]byte(" short\n")))
	long := SummarizeBody([]byte(strings.Repeat("a", 200)))
	assert.Len(t, long, 123)
}
