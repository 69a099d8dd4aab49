package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nicgen/buy-02/apierror"
	"github.com/nicgen/buy-02/logger"
)

func TestMain(m *testing.M) {
	logger.InitializeNop()
	os.Exit(m.Run())
}

type staticTokens struct {
	mu    sync.Mutex
	token string
}

func (s *staticTokens) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *staticTokens) set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func TestTransportAttachesToken(t *testing.T) {
	var sawAuth, sawRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		sawRequestID = r.Header.Get("X-Request-ID")
	}))
	defer server.Close()

	tokens := &staticTokens{token: "tok-123"}
	api := NewAPIClient(server.URL, 5*time.Second, NewAuthTransport(nil, tokens, nil))

	err := api.JSON(context.Background(), http.MethodGet, "/api/products", nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", sawAuth)
	assert.NotEmpty(t, sawRequestID, "every request carries a request id")

	t.Run("Anonymous Request Passes Through", func(t *testing.T) {
		tokens.set("")
		err := api.JSON(context.Background(), http.MethodGet, "/api/products", nil, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, sawAuth)
	})
}

func TestTransportDoesNotMutateRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	transport := NewAuthTransport(nil, &staticTokens{token: "tok"}, nil)
	client := &http.Client{Transport: transport}

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	assert.NoError(t, err)

	_, err = client.Do(req)
	assert.NoError(t, err)
	assert.Empty(t, req.Header.Get("Authorization"), "caller's request stays untouched")
}

func TestAuthFailureHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	var teardowns atomic.Int32
	transport := NewAuthTransport(nil, &staticTokens{token: "tok"}, nil)
	transport.SetAuthFailureHook(func() {
		teardowns.Add(1)
	})
	api := NewAPIClient(server.URL, 5*time.Second, transport)

	err := api.JSON(context.Background(), http.MethodGet, "/api/orders", nil, nil, nil)
	assert.Error(t, err)
	// The original error reaches the caller unchanged.
	assert.Equal(t, http.StatusForbidden, apierror.StatusCode(err))
	assert.Equal(t, int32(1), teardowns.Load(), "hook runs exactly once per failing request")
}

func TestConcurrentAuthFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var teardowns atomic.Int32
	transport := NewAuthTransport(nil, &staticTokens{token: "tok"}, nil)
	transport.SetAuthFailureHook(func() {
		// Must be safe to run concurrently; session teardown is idempotent.
		teardowns.Add(1)
	})
	api := NewAPIClient(server.URL, 5*time.Second, transport)

	const inFlight = 8
	var wg sync.WaitGroup
	for i := 0; i < inFlight; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := api.JSON(context.Background(), http.MethodGet, "/api/orders", nil, nil, nil)
			assert.Error(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(inFlight), teardowns.Load(), "one teardown per failing request, no more")
}

func TestNonAuthErrorsSkipHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var teardowns atomic.Int32
	transport := NewAuthTransport(nil, &staticTokens{}, nil)
	transport.SetAuthFailureHook(func() { teardowns.Add(1) })
	api := NewAPIClient(server.URL, 5*time.Second, transport)

	err := api.JSON(context.Background(), http.MethodGet, "/api/products/nope", nil, nil, nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(err))
	assert.Zero(t, teardowns.Load())
}

func TestJSONRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": payload["hello"]})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL, 5*time.Second, NewAuthTransport(nil, &staticTokens{}, nil))

	var out map[string]string
	err := api.JSON(context.Background(), http.MethodPost, "/echo", nil, map[string]string{"hello": "world"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, "world", out["echo"])
}
