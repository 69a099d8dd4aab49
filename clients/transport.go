package clients

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nicgen/buy-02/apierror"
	"github.com/nicgen/buy-02/logger"
)

// TokenSource yields the current session token, or "" when anonymous.
type TokenSource interface {
	Token() string
}

// AuthTransport is the single interception point wrapping every outgoing API
// request. It attaches the bearer token when one exists, stamps a request id,
// and on a 401/403 response invokes the auth-failure hook before handing the
// response back unchanged.
type AuthTransport struct {
	base    http.RoundTripper
	tokens  TokenSource
	limiter *rate.Limiter

	mu            sync.RWMutex
	onAuthFailure func()
}

// NewAuthTransport wraps base (http.DefaultTransport when nil). limiter may
// be nil to disable outbound throttling.
func NewAuthTransport(base http.RoundTripper, tokens TokenSource, limiter *rate.Limiter) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{
		base:    base,
		tokens:  tokens,
		limiter: limiter,
	}
}

// SetAuthFailureHook installs the callback run once per request that fails
// with an authorization error. The hook must be idempotent with respect to
// session state: concurrent failing requests each invoke it.
func (t *AuthTransport) SetAuthFailureHook(fn func()) {
	t.mu.Lock()
	t.onAuthFailure = fn
	t.mu.Unlock()
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	// RoundTrippers must not mutate the caller's request.
	out := req.Clone(req.Context())
	if token := t.tokens.Token(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	out.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := t.base.RoundTrip(out)
	latency := time.Since(start)

	if err != nil {
		logger.Error("Request failed", err,
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Duration("latency", latency),
		)
		return nil, err
	}

	logger.Debug("Request completed",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", latency),
	)

	if apierror.IsAuthFailure(resp.StatusCode) {
		logger.Warn("Authorization failure, tearing down session",
			zap.String("request_id", requestID),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
		)
		t.mu.RLock()
		hook := t.onAuthFailure
		t.mu.RUnlock()
		if hook != nil {
			hook()
		}
	}

	// The caller still observes the original response, auth failure or not.
	return resp, nil
}
