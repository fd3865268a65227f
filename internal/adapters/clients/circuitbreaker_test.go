package clients

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trippedBreaker returns an open breaker with a controllable clock.
func trippedBreaker(timeout time.Duration, halfOpenLimit int) (*CircuitBreaker, *time.Time) {
	now := time.Now()
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   1,
		Timeout:       timeout,
		HalfOpenLimit: halfOpenLimit,
	})
	cb.now = func() time.Time { return now }
	cb.RecordFailure()

	return cb, &now
}

func TestCircuitBreaker_StartsClosed(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   5,
		Timeout:       30 * time.Second,
		HalfOpenLimit: 3,
	})

	assert.Equal(t, StateClosed, cb.State())
	assert.True(t, cb.Allow())
}

func TestCircuitBreaker_OpensAtFailureThreshold(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   3,
		Timeout:       30 * time.Second,
		HalfOpenLimit: 2,
	})

	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   3,
		Timeout:       30 * time.Second,
		HalfOpenLimit: 2,
	})

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()

	// The count starts over, so two more failures stay closed.
	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	t.Run("probes half-open after the timeout", func(t *testing.T) {
		cb, now := trippedBreaker(100*time.Millisecond, 2)
		assert.False(t, cb.Allow())

		*now = now.Add(150 * time.Millisecond)

		assert.True(t, cb.Allow())
		assert.Equal(t, StateHalfOpen, cb.State())
	})

	t.Run("closes after enough half-open successes", func(t *testing.T) {
		cb, now := trippedBreaker(100*time.Millisecond, 2)
		*now = now.Add(150 * time.Millisecond)
		cb.Allow()

		cb.RecordSuccess()
		assert.Equal(t, StateHalfOpen, cb.State())

		cb.RecordSuccess()
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("any half-open failure reopens", func(t *testing.T) {
		cb, now := trippedBreaker(100*time.Millisecond, 2)
		*now = now.Add(150 * time.Millisecond)
		cb.Allow()

		cb.RecordFailure()
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var mu sync.Mutex
	var transitions []struct{ from, to State }

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   1,
		Timeout:       10 * time.Millisecond,
		HalfOpenLimit: 1,
	})
	cb.OnStateChange(func(from, to State) {
		mu.Lock()
		transitions = append(transitions, struct{ from, to State }{from, to})
		mu.Unlock()
	})

	cb.RecordFailure()

	// The callback fires on a separate goroutine.
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, transitions, 1)
	assert.Equal(t, StateClosed, transitions[0].from)
	assert.Equal(t, StateOpen, transitions[0].to)
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   100,
		Timeout:       time.Second,
		HalfOpenLimit: 10,
	})

	var wg sync.WaitGroup
	var allows int64

	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !cb.Allow() {
				return
			}
			if atomic.AddInt64(&allows, 1)%2 == 0 {
				cb.RecordSuccess()
			} else {
				cb.RecordFailure()
			}
		}()
	}
	wg.Wait()

	assert.Contains(t, []State{StateClosed, StateOpen, StateHalfOpen}, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(99).String())
}
