package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/nicgen/buy-02/clients"
	"github.com/nicgen/buy-02/logger"
	"github.com/nicgen/buy-02/models"
	"github.com/nicgen/buy-02/storage"
	"github.com/nicgen/buy-02/stream"
)

// Storage keys for the persisted session fields. Written and cleared
// together, never individually.
const (
	KeyToken    = "auth_token"
	KeyRole     = "user_role"
	KeyUsername = "auth_username"
)

// Client-side routes the services navigate to.
const (
	RouteLogin  = "/auth/login"
	RouteOrders = "/orders"
)

// Navigator switches the active view. Implemented by the CLI front end;
// navigating repeatedly to the same route is a no-op there.
type Navigator interface {
	NavigateTo(route string)
}

// AuthService owns the session lifecycle: login, register, logout, profile
// access, and the role broadcast stream. All session writes are atomic with
// respect to readers.
type AuthService struct {
	api   *clients.APIClient
	store storage.Store
	nav   Navigator

	mu    sync.Mutex
	roles *stream.Stream[models.Role]
}

// NewAuthService restores the session from the store (warm start), so a
// process restart with a persisted token begins authenticated.
func NewAuthService(api *clients.APIClient, store storage.Store, nav Navigator) *AuthService {
	s := &AuthService{
		api:   api,
		store: store,
		nav:   nav,
	}
	s.roles = stream.New(s.CurrentRole())
	return s
}

// StoreTokenSource adapts the session store to the transport's TokenSource.
type StoreTokenSource struct {
	Store storage.Store
}

func (s StoreTokenSource) Token() string {
	token, err := s.Store.Get(KeyToken)
	if err != nil {
		return ""
	}
	return token
}

// Login submits credentials and, on success, persists the returned session
// atomically and publishes the new role. A failed login leaves stored state
// untouched.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var session models.Session
	if err := s.api.JSON(ctx, http.MethodPost, "/api/auth/login", nil, creds, &session); err != nil {
		return models.Session{}, err
	}
	s.establish(session)
	return session, nil
}

// Register creates an account and establishes a session from the response,
// the same auto-login contract as Login.
func (s *AuthService) Register(ctx context.Context, user models.NewUser) (models.Session, error) {
	var session models.Session
	if err := s.api.JSON(ctx, http.MethodPost, "/api/auth/register", nil, user, &session); err != nil {
		return models.Session{}, err
	}
	s.establish(session)
	return session, nil
}

func (s *AuthService) establish(session models.Session) {
	if session.Token == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := map[string]string{
		KeyToken: session.Token,
		KeyRole:  string(session.Role),
	}
	if session.Username != "" {
		values[KeyUsername] = session.Username
	}
	if err := s.store.SetMany(values); err != nil {
		logger.Error("Failed to persist session", err)
		return
	}
	s.roles.Publish(session.Role)
}

// Logout clears the session, publishes the absent role, and navigates to the
// login view. It cannot fail and is safe to call when already logged out.
func (s *AuthService) Logout() {
	s.Invalidate()
	if s.nav != nil {
		s.nav.NavigateTo(RouteLogin)
	}
}

// Invalidate is the teardown half of Logout, used by the transport pipeline
// which runs outside any view. Clearing an already-cleared session is a
// no-op.
func (s *AuthService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Token() == "" {
		return
	}
	if err := s.store.DeleteMany(KeyToken, KeyRole, KeyUsername); err != nil {
		logger.Error("Failed to clear session", err)
	}
	s.roles.Publish("")
}

// IsAuthenticated reports whether a token is currently stored.
func (s *AuthService) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token implements clients.TokenSource.
func (s *AuthService) Token() string {
	return StoreTokenSource{Store: s.store}.Token()
}

// CurrentRole returns the persisted role, or "" when anonymous.
func (s *AuthService) CurrentRole() models.Role {
	role, err := s.store.Get(KeyRole)
	if err != nil {
		return ""
	}
	return models.Role(role)
}

// CurrentUsername returns the persisted username, or "" when anonymous.
func (s *AuthService) CurrentUsername() string {
	username, err := s.store.Get(KeyUsername)
	if err != nil {
		return ""
	}
	return username
}

// Roles is the role broadcast stream: a new subscriber immediately receives
// the current role, then every change in publish order.
func (s *AuthService) Roles() *stream.Stream[models.Role] {
	return s.roles
}

// UserID extracts the user id claim from the stored token. The client holds
// no signing key, so the parse is unverified; the server remains the
// authority on the token's validity.
func (s *AuthService) UserID() string {
	token := s.Token()
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Warn("Could not parse session token", zap.Error(err))
		return ""
	}
	for _, key := range []string{"userId", "user_id", "id", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Profile fetches the account details. No local caching: every call hits the
// API.
func (s *AuthService) Profile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := s.api.JSON(ctx, http.MethodGet, "/api/auth/profile", nil, nil, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile applies a partial profile update and returns the stored
// profile.
func (s *AuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile
	if err := s.api.JSON(ctx, http.MethodPut, "/api/auth/profile", nil, update, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
