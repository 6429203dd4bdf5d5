package httpclient

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

func TestDoJSON_DecodesAndSendsHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		assert.Equal(t, "/api/thing", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"Milo"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		Name string `json:"name"`
	}
	err = c.DoJSON(context.Background(), http.MethodGet, "api/thing", map[string]string{"X-Test": "yes"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Milo", out.Name)
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	c := New(time.Second)
	var raw json.RawMessage
	err := c.DoJSON(context.Background(), http.MethodGet, ts.URL+"/x", nil, nil, &raw)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "nope", he.Body)
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	err := New(0).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	assert.Error(t, err)
}

func TestNewWithBaseURL_RejectsNonHTTP(t *testing.T) {
	_, err := NewWithBaseURL("ftp://example.org", 0)
	assert.Error(t, err)
}

func TestWithRateLimit_CancelledContext(t *testing.T) {
	c := New(time.Second).WithRateLimit(0.001, 1)
	// consume el único token del burst
	require.True(t, c.Limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.DoJSON(ctx, http.MethodGet, "http://127.0.0.1:1/never", nil, nil, nil)
	assert.Error(t, err)
}

func TestWithRateLimit_ZeroDisables(t *testing.T) {
	c := New(time.Second).WithRateLimit(0, 5)
	assert.Nil(t, c.Limiter)
}
