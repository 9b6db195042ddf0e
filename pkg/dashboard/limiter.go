package dashboard

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore keeps one token bucket per client key. REST keys on the
// caller IP and gRPC on the peer address; an operator overrides a key's
// budget through the limiter endpoints, unknown keys get the defaults.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(clientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[clientID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[clientID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(clientID string, clientRate rate.Limit, clientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[clientID] = rate.NewLimiter(clientRate, clientBurst)
}

// Allow is true when a nil store is used, i.e. limiting is off.
func (s *RateLimiterStore) Allow(clientID string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(clientID).Allow()
}
