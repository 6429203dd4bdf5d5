package dogapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rescue-dog-favorites/internal/domain/dogs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/animals/id/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 7, "slug": "milo-7", "name": "Milo", "standardized_size": "Large",
			"properties": {"good_with_dogs": true},
			"organization": {"name": "Paws"},
			"dog_profiler_data": "not an object"
		}`))
	})
	mux.HandleFunc("/api/animals/id/8", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/animals/id/9", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[1,2]`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_GetByID(t *testing.T) {
	ts := newTestServer(t)
	c, err := NewClient(Config{BaseURL: ts.URL}, nil)
	require.NoError(t, err)

	d, err := c.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), d.ID)
	assert.Equal(t, "Milo", d.Name)
	assert.Equal(t, dogs.CompatYes, d.Compatibility.Dogs)
	assert.True(t, d.Profiler.Malformed)
	_, ok := d.Profiler.Get()
	assert.False(t, ok)
}

func TestClient_GetByID_Errors(t *testing.T) {
	ts := newTestServer(t)
	c, err := NewClient(Config{BaseURL: ts.URL, RequestsPerSecond: 100, Burst: 5}, nil)
	require.NoError(t, err)

	_, err = c.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, dogs.ErrNotFound)

	_, err = c.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = c.GetByID(context.Background(), 9)
	assert.True(t, errors.Is(err, ErrUpstream))
}

func TestClient_WorksWithFetcher(t *testing.T) {
	ts := newTestServer(t)
	c, err := NewClient(Config{BaseURL: ts.URL}, nil)
	require.NoError(t, err)

	list, err := dogs.NewFetcher(c, nil).FetchByIDs(context.Background(), []int64{404, 7, 8})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{BaseURL: "ftp://dogs"}, nil)
	assert.Error(t, err)
}
