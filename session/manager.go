// Package session owns "who is currently signed in": the bearer
// credential and the profile it belongs to, mirrored to a durable store
// and injected into every outbound request through the client's token
// hook. Construct one Manager at startup and pass it to whatever needs
// it; there is no package-level instance.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/servinow/servinow-go/client"
	"github.com/servinow/servinow-go/enums"
	"github.com/servinow/servinow-go/models"
	"github.com/servinow/servinow-go/store"
	"github.com/servinow/servinow-go/utils"
	"github.com/servinow/servinow-go/utils/logger"
)

// How long the background storage clear after SignOut may run.
const clearStoreTimeout = 5 * time.Second

// Manager is the single source of truth for the current session. All
// methods are safe for concurrent use; the last completed mutation wins.
type Manager struct {
	client *client.Client
	store  store.KeyValueStore

	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool

	bg sync.WaitGroup
}

// New wires the manager into the client as its token provider, so every
// request the client sends from now on carries the current credential.
func New(c *client.Client, kv store.KeyValueStore) *Manager {
	m := &Manager{client: c, store: kv}
	c.SetTokenProvider(m)
	return m
}

// Token implements client.TokenProvider. It returns "" when signed out,
// which suppresses the Authorization header entirely.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the signed-in profile, if any.
func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// Session returns the full credential/profile pair, if signed in.
func (m *Manager) Session() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.Session{}, false
	}
	return models.Session{Token: m.token, User: *m.user}, true
}

// SignedIn reports whether a session is currently held.
func (m *Manager) SignedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// Loading reports whether Initialize is still resolving the stored
// session. Session-dependent UI should wait for it to turn false.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Initialize loads any stored session and revalidates it against
// /auth/me. It ends in one of two stable states: signed out, or signed
// in with a server-confirmed profile. All failures are absorbed; a
// credential the backend no longer accepts simply leaves the user
// signed out.
func (m *Manager) Initialize(ctx context.Context) {
	m.setLoading(true)
	defer m.setLoading(false)

	token, err := m.store.Get(ctx, store.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.LogWarn("loading stored credential failed", zap.Error(err))
		}
		return
	}
	rawUser, err := m.store.Get(ctx, store.KeyUserData)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.LogWarn("loading stored profile failed", zap.Error(err))
		}
		return
	}

	var cached models.User
	if err := utils.BytesToStruct([]byte(rawUser), &cached); err != nil {
		logger.LogWarn("stored profile is unreadable, discarding session", zap.Error(err))
		m.clear(ctx)
		return
	}

	// Optimistic: show the cached profile while the backend confirms the
	// credential is still accepted.
	m.set(token, cached)

	var fresh models.User
	if err := m.client.Get(ctx, "Revalidate", "/auth/me", &fresh); err != nil {
		// No distinction between rejection and an unreachable backend:
		// both end signed out.
		logger.LogInfo("stored session rejected on revalidation", zap.Error(err))
		m.clear(ctx)
		return
	}

	// The server copy wins over whatever was cached.
	m.set(token, fresh)
}

// SignIn exchanges credentials for a session. On failure the returned
// error carries a single display-ready message (the backend's reason
// when it gave one) and the session is left unchanged.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	var auth models.AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := m.client.Post(ctx, "SignIn", "/auth/login", body, &auth); err != nil {
		logger.LogInfo("sign-in failed", zap.String("email", email), zap.Error(err))
		return displayError(err, "Login failed")
	}

	m.persist(ctx, auth.AccessToken, auth.User)
	m.set(auth.AccessToken, auth.User)
	return nil
}

// SignUp registers an account; the backend creates it and returns a
// session in one step. The email is lowercased before sending, matching
// the backend's registration normalization.
func (m *Manager) SignUp(ctx context.Context, email, password, fullName string, role enums.Role) error {
	email = strings.ToLower(email)

	var auth models.AuthResponse
	body := map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
		"role":      string(role),
	}
	if err := m.client.Post(ctx, "SignUp", "/auth/register", body, &auth); err != nil {
		logger.LogInfo("sign-up failed", zap.String("email", email), zap.Error(err))
		return displayError(err, "Registration failed")
	}

	m.persist(ctx, auth.AccessToken, auth.User)
	m.set(auth.AccessToken, auth.User)
	return nil
}

// SignOut clears the in-memory session synchronously so callers observe
// the signed-out state immediately, then clears storage in the
// background. It never fails and is safe to call when already signed
// out.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.bg.Add(1)
	go func() {
		defer m.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), clearStoreTimeout)
		defer cancel()
		m.clearStore(ctx)
	}()
}

// Wait blocks until background storage work from SignOut has finished.
// Intended for orderly shutdown.
func (m *Manager) Wait() {
	m.bg.Wait()
}

func (m *Manager) set(token string, user models.User) {
	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

// persist mirrors the session to storage. Storage failures are logged
// and swallowed: they must never block a successful sign-in.
func (m *Manager) persist(ctx context.Context, token string, user models.User) {
	if err := m.store.Set(ctx, store.KeyAuthToken, token); err != nil {
		logger.LogWarn("persisting credential failed", zap.Error(err))
		return
	}
	data, err := utils.StructToBytes(user)
	if err != nil {
		logger.LogWarn("encoding profile failed", zap.Error(err))
		return
	}
	if err := m.store.Set(ctx, store.KeyUserData, string(data)); err != nil {
		logger.LogWarn("persisting profile failed", zap.Error(err))
	}
}

// clear drops both memory and storage.
func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	m.clearStore(ctx)
}

func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Delete(ctx, store.KeyAuthToken); err != nil {
		logger.LogWarn("clearing stored credential failed", zap.Error(err))
	}
	if err := m.store.Delete(ctx, store.KeyUserData); err != nil {
		logger.LogWarn("clearing stored profile failed", zap.Error(err))
	}
}

// displayError normalizes any sign-in/sign-up failure into one error
// with a human-readable message. Backend-provided reasons win; raw
// transport errors degrade to the fallback.
func displayError(err error, fallback string) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return errors.New(fallback)
}
