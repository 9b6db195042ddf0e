package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterStore_Defaults(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("203.0.113.7")
	require.NotNil(t, limiter)
	assert.EqualValues(t, 1, limiter.Limit())
	assert.Equal(t, 2, limiter.Burst())
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter("dashboard-kiosk", 5, 10)
	limiter := store.GetLimiter("dashboard-kiosk")

	assert.EqualValues(t, 5, limiter.Limit())
	assert.Equal(t, 10, limiter.Burst())
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)
	clientID := uuid.NewString()

	var wg sync.WaitGroup
	seen := make(chan any, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- store.GetLimiter(clientID)
		}()
	}
	wg.Wait()
	close(seen)

	first := store.GetLimiter(clientID)
	for l := range seen {
		assert.Same(t, first, l)
	}
}

func TestRateLimiterStore_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2)
	clientID := uuid.NewString()

	assert.True(t, store.Allow(clientID))
	assert.True(t, store.Allow(clientID))
	assert.False(t, store.Allow(clientID), "third call should be limited")

	time.Sleep(600 * time.Millisecond)
	assert.True(t, store.Allow(clientID), "one token should refill")
}

func TestRateLimiterStore_NilAllowsAll(t *testing.T) {
	var store *RateLimiterStore
	for i := 0; i < 10; i++ {
		assert.True(t, store.Allow("anyone"))
	}
}
