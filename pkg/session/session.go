package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
)

var (
	ErrNoSession = errors.New("no active session")
	ErrExpired   = errors.New("session expired")
)

// Session holds the identity token attached to every backend request.
// The signature is not checked here; the backend verifies it.
type Session struct {
	mu        sync.RWMutex
	token     string
	email     string
	expiresAt time.Time
	expired   bool

	now    func() time.Time
	logger *zap.Logger
}

func New() *Session {
	return &Session{
		now:    time.Now,
		logger: common.GetCategoryLogger(common.LoggerNameBackend, common.LoggerCategorySession),
	}
}

func (s *Session) Login(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("malformed identity token: %w", err)
	}

	var expiresAt time.Time
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("malformed identity token: %w", err)
	}
	if exp != nil {
		expiresAt = exp.Time
	}
	email, _ := claims["email"].(string)

	s.mu.Lock()
	s.token = token
	s.email = email
	s.expiresAt = expiresAt
	s.expired = false
	s.mu.Unlock()

	s.logger.Info("session started", zap.String("email", email), zap.Time("expires_at", expiresAt))
	return nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.expiresAt = time.Time{}
	s.expired = false
	s.mu.Unlock()

	s.logger.Info("session cleared")
}

// Expire marks the current token as rejected. Token keeps failing with
// ErrExpired until the next Login.
func (s *Session) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return
	}
	s.expired = true
	s.logger.Warn("session rejected by backend", zap.String("email", s.email))
}

func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	if s.expired || (!s.expiresAt.IsZero() && !s.now().Before(s.expiresAt)) {
		return "", ErrExpired
	}
	return s.token, nil
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}
