package clients

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotevault/quotevault/internal/adapters/http/middleware"
	"github.com/quotevault/quotevault/internal/platform/config"
)

// backendConfig returns a client config shaped like the one the tables
// adapter uses against the quote backend.
func backendConfig() *Config {
	return &Config{
		ServiceName: "quote-backend",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	}
}

func mustDrain(t *testing.T, resp *http.Response) {
	t.Helper()
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
}

func TestNew_Validation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing service name", func(t *testing.T) {
		cfg := backendConfig()
		cfg.ServiceName = ""

		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service name is required")
	})

	t.Run("trailing slash stripped from base URL", func(t *testing.T) {
		cfg := backendConfig()
		cfg.BaseURL = "https://backend.quotevault.app/"

		client, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://backend.quotevault.app", client.BaseURL())
	})
}

func TestClient_BuildURL(t *testing.T) {
	cfg := backendConfig()
	cfg.BaseURL = "https://backend.quotevault.app"

	client, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "https://backend.quotevault.app/rest/v1/quotes", client.buildURL("/rest/v1/quotes"))
	assert.Equal(t, "https://backend.quotevault.app/rest/v1/quotes", client.buildURL("rest/v1/quotes"))
}

func TestClient_PropagatesRequestIdentity(t *testing.T) {
	var gotRequestID, gotCorrelationID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(middleware.HeaderRequestID)
		gotCorrelationID = r.Header.Get(middleware.HeaderCorrelationID)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := backendConfig()
	cfg.BaseURL = server.URL

	client, err := New(cfg)
	require.NoError(t, err)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-9000")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-42")

	resp, err := client.Get(ctx, "/rest/v1/quotes")
	require.NoError(t, err)
	mustDrain(t, resp)

	assert.Equal(t, "req-9000", gotRequestID)
	assert.Equal(t, "corr-42", gotCorrelationID)
}

func TestClient_RetryBehavior(t *testing.T) {
	t.Run("retries server errors until success", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := backendConfig()
		cfg.BaseURL = server.URL

		client, err := New(cfg)
		require.NoError(t, err)

		resp, err := client.Get(context.Background(), "/rest/v1/quotes")
		require.NoError(t, err)
		mustDrain(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("client errors pass through without retry", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		cfg := backendConfig()
		cfg.BaseURL = server.URL

		client, err := New(cfg)
		require.NoError(t, err)

		resp, err := client.Get(context.Background(), "/rest/v1/quotes?id=eq.999")
		require.NoError(t, err)
		mustDrain(t, resp)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		cfg := backendConfig()
		cfg.BaseURL = server.URL

		client, err := New(cfg)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/rest/v1/quotes")
		require.ErrorIs(t, err, ErrMaxRetriesExceeded)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})
}

func TestClient_CircuitBreaker(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := backendConfig()
	cfg.BaseURL = server.URL
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit.MaxFailures = 2

	client, err := New(cfg)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/rest/v1/quotes")
	require.Error(t, err)
	assert.Equal(t, StateClosed, client.CircuitState())

	_, err = client.Get(context.Background(), "/rest/v1/quotes")
	require.Error(t, err)
	assert.Equal(t, StateOpen, client.CircuitState())

	before := atomic.LoadInt32(&calls)

	_, err = client.Get(context.Background(), "/rest/v1/quotes")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, before, atomic.LoadInt32(&calls), "open circuit must not reach the backend")
}

func TestClient_AuthFunc(t *testing.T) {
	t.Run("injects the service key", func(t *testing.T) {
		var gotAPIKey, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAPIKey = r.Header.Get("apikey")
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := backendConfig()
		cfg.BaseURL = server.URL
		cfg.AuthFunc = func(r *http.Request) {
			r.Header.Set("apikey", "anon-key")
			r.Header.Set("Authorization", "Bearer anon-key")
		}

		client, err := New(cfg)
		require.NoError(t, err)

		resp, err := client.Get(context.Background(), "/rest/v1/quotes")
		require.NoError(t, err)
		mustDrain(t, resp)

		assert.Equal(t, "anon-key", gotAPIKey)
		assert.Equal(t, "Bearer anon-key", gotAuth)
	})

	t.Run("re-invoked on each retry", func(t *testing.T) {
		var authCalls, requests int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&requests, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := backendConfig()
		cfg.BaseURL = server.URL
		cfg.Retry.MaxAttempts = 2
		cfg.Retry.InitialInterval = time.Millisecond
		cfg.AuthFunc = func(r *http.Request) {
			atomic.AddInt32(&authCalls, 1)
			r.Header.Set("Authorization", "Bearer anon-key")
		}

		client, err := New(cfg)
		require.NoError(t, err)

		resp, err := client.Get(context.Background(), "/rest/v1/quotes")
		require.NoError(t, err)
		mustDrain(t, resp)

		assert.Equal(t, int32(2), atomic.LoadInt32(&authCalls))
	})
}

func TestClient_WriteMethods(t *testing.T) {
	var gotMethod, gotContentType, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	cfg := backendConfig()
	cfg.BaseURL = server.URL

	client, err := New(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := client.Post(ctx, "/rest/v1/favorites", strings.NewReader(`{"quote_id":"16"}`))
	require.NoError(t, err)
	mustDrain(t, resp)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"quote_id":"16"}`, gotBody)

	resp, err = client.Patch(ctx, "/rest/v1/profiles?id=eq.user-1", strings.NewReader(`{"display_name":"Ada"}`))
	require.NoError(t, err)
	mustDrain(t, resp)
	assert.Equal(t, http.MethodPatch, gotMethod)

	resp, err = client.Put(ctx, "/rest/v1/collections?id=eq.col-1", strings.NewReader(`{"name":"Calm"}`))
	require.NoError(t, err)
	mustDrain(t, resp)
	assert.Equal(t, http.MethodPut, gotMethod)

	resp, err = client.Delete(ctx, "/rest/v1/favorites?quote_id=eq.16")
	require.NoError(t, err)
	mustDrain(t, resp)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := backendConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 50 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	client, err := New(cfg)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/rest/v1/quotes")
	require.Error(t, err)
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := backendConfig()
	cfg.BaseURL = server.URL

	client, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, "/rest/v1/quotes")
	require.Error(t, err)
}

func TestCalculateBackoff(t *testing.T) {
	cfg := backendConfig()
	cfg.Retry.InitialInterval = 100 * time.Millisecond
	cfg.Retry.Multiplier = 2.0
	cfg.Retry.MaxInterval = time.Second

	client, err := New(cfg)
	require.NoError(t, err)

	// Jitter is ±25%, so check each attempt lands in its band.
	assert.InDelta(t, 100*time.Millisecond, client.calculateBackoff(0), float64(50*time.Millisecond))
	assert.InDelta(t, 200*time.Millisecond, client.calculateBackoff(1), float64(100*time.Millisecond))
	assert.InDelta(t, 400*time.Millisecond, client.calculateBackoff(2), float64(200*time.Millisecond))

	// Large attempts are capped at MaxInterval plus jitter.
	assert.LessOrEqual(t, client.calculateBackoff(10), cfg.Retry.MaxInterval+cfg.Retry.MaxInterval/4)
}

type fakeNetError struct {
	timeout bool
}

func (e fakeNetError) Error() string   { return "fake net error" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return true }

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "nil", err: nil, retryable: false},
		{name: "context canceled", err: context.Canceled, retryable: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, retryable: false},
		{name: "network timeout", err: fakeNetError{timeout: true}, retryable: true},
		{name: "non-timeout net error", err: fakeNetError{timeout: false}, retryable: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}
