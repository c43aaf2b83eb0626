// Package session holds the authenticated courier identity and bearer token,
// persisting them across agent restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

// Persisted storage keys, carried over from the mobile app unchanged.
const (
	keyAuthToken       = "auth_token"
	keyIsAuthenticated = "is_authenticated"
	keyCurrentEmployee = "current_employee"
)

// Snapshot is a point-in-time view of the session state.
type Snapshot struct {
	Courier       *domain.Courier
	Token         string
	Authenticated bool
}

// Store is the single process-wide session. All methods are safe for
// concurrent use.
type Store struct {
	api    loginAPI
	kv     KV
	logger logx.Logger
	now    func() time.Time

	mu            sync.RWMutex
	courier       *domain.Courier
	token         string
	authenticated bool
}

// NewStore creates an unauthenticated session store.
func NewStore(api loginAPI, kv KV, logger logx.Logger) *Store {
	return &Store{
		api:    api,
		kv:     kv,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Login authenticates the courier by employee code. On failure the session
// state is left untouched. When the server issues no token the store derives
// the legacy placeholder token so authenticated requests keep working.
func (s *Store) Login(ctx context.Context, employeeCode string) (*domain.Courier, error) {
	courier, token, err := s.api.Login(ctx, employeeCode)
	if err != nil {
		return nil, err
	}
	if token == "" {
		token = "dummy_token_" + employeeCode
	}

	s.mu.Lock()
	s.courier = courier
	s.token = token
	s.authenticated = true
	s.mu.Unlock()

	if err := s.persist(*courier, token); err != nil {
		// Session stays valid in memory; only the durable copy is stale.
		s.logger.Warn("session persist failed", logx.Err(err))
	}

	s.logger.Info("courier logged in",
		logx.Int64("courier_id", courier.ID),
		logx.String("employee_code", courier.EmployeeCode),
	)

	cp := *courier
	return &cp, nil
}

// Logout clears the in-memory session and its persisted copy. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.courier = nil
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()

	for _, key := range []string{keyAuthToken, keyIsAuthenticated, keyCurrentEmployee} {
		if err := s.kv.Remove(key); err != nil {
			s.logger.Warn("session clear failed", logx.String("key", key), logx.Err(err))
		}
	}
}

// Restore repopulates the session from persisted storage on process start.
// Absent or corrupt state leaves the store unauthenticated; Restore never
// returns an error for that.
func (s *Store) Restore() {
	token, authFlag, courier, ok := s.loadPersisted()
	if !ok {
		return
	}
	if !authFlag || token == "" || courier == nil {
		return
	}
	if s.tokenExpired(token) {
		s.logger.Info("persisted token expired, starting unauthenticated")
		s.Logout()
		return
	}

	s.mu.Lock()
	s.courier = courier
	s.token = token
	s.authenticated = true
	s.mu.Unlock()

	s.logger.Info("session restored", logx.Int64("courier_id", courier.ID))
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Token: s.token, Authenticated: s.authenticated}
	if s.courier != nil {
		cp := *s.courier
		snap.Courier = &cp
	}
	return snap
}

// Token returns the current bearer token, empty when unauthenticated.
// Implements the API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether a courier is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// CourierID returns the logged-in courier's id, or 0 when unauthenticated.
func (s *Store) CourierID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.courier == nil {
		return 0
	}
	return s.courier.ID
}

func (s *Store) persist(courier domain.Courier, token string) error {
	profile, err := json.Marshal(courier)
	if err != nil {
		return fmt.Errorf("marshal courier: %w", err)
	}
	if err := s.kv.Set(keyAuthToken, []byte(token)); err != nil {
		return fmt.Errorf("set %s: %w", keyAuthToken, err)
	}
	if err := s.kv.Set(keyIsAuthenticated, []byte("true")); err != nil {
		return fmt.Errorf("set %s: %w", keyIsAuthenticated, err)
	}
	if err := s.kv.Set(keyCurrentEmployee, profile); err != nil {
		return fmt.Errorf("set %s: %w", keyCurrentEmployee, err)
	}
	return nil
}

func (s *Store) loadPersisted() (token string, authFlag bool, courier *domain.Courier, ok bool) {
	rawToken, err := s.kv.Get(keyAuthToken)
	if err != nil {
		s.logger.Warn("session restore: read token failed", logx.Err(err))
		return "", false, nil, false
	}
	rawFlag, err := s.kv.Get(keyIsAuthenticated)
	if err != nil {
		s.logger.Warn("session restore: read flag failed", logx.Err(err))
		return "", false, nil, false
	}
	rawProfile, err := s.kv.Get(keyCurrentEmployee)
	if err != nil {
		s.logger.Warn("session restore: read profile failed", logx.Err(err))
		return "", false, nil, false
	}
	if rawProfile != nil {
		var c domain.Courier
		if err := json.Unmarshal(rawProfile, &c); err != nil {
			s.logger.Warn("session restore: corrupt courier profile", logx.Err(err))
			return "", false, nil, false
		}
		courier = &c
	}
	return string(rawToken), string(rawFlag) == "true", courier, true
}

// tokenExpired inspects a JWT exp claim without verifying the signature.
// Opaque (non-JWT) tokens, including the legacy placeholder, never expire
// client-side.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}
