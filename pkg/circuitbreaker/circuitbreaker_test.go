package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream down")

func testConfig() Config {
	return Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		Timeout:             30 * time.Millisecond,
		HalfOpenMaxRequests: 3,
	}
}

func trip(t *testing.T, cb *CircuitBreaker) {
	t.Helper()
	for i := 0; i < testConfig().FailureThreshold; i++ {
		if err := cb.Execute(func() error { return errUpstream }); err != errUpstream {
			t.Fatalf("failure %d: expected upstream error, got %v", i, err)
		}
	}
}

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker(testConfig())
	trip(t, cb)

	err := cb.Execute(func() error { return nil })
	if err != ErrCircuitBreakerOpen {
		t.Fatalf("expected ErrCircuitBreakerOpen, got %v", err)
	}
	if cb.GetState() != StateOpen {
		t.Fatalf("expected open state, got %v", cb.GetState())
	}
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker(testConfig())

	for i := 0; i < 10; i++ {
		cb.Execute(func() error { return errUpstream })
		cb.Execute(func() error { return nil })
		cb.Execute(func() error { return errUpstream })
	}
	// Never three consecutive failures, so the breaker stays closed.
	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("breaker tripped without reaching threshold: %v", err)
	}
}

func TestRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker(testConfig())
	trip(t, cb)
	if err := cb.Execute(func() error { return nil }); err != ErrCircuitBreakerOpen {
		t.Fatalf("expected open rejection, got %v", err)
	}

	time.Sleep(40 * time.Millisecond)

	// Probes succeed; after the success threshold the breaker closes again.
	for i := 0; i < 3; i++ {
		if err := cb.Execute(func() error { return nil }); err != nil {
			t.Fatalf("probe %d rejected: %v", i, err)
		}
	}
	if cb.GetState() != StateClosed {
		t.Fatalf("expected closed after recovery, got %v", cb.GetState())
	}
}

func TestFailedProbeReopens(t *testing.T) {
	cb := NewCircuitBreaker(testConfig())
	trip(t, cb)
	cb.Execute(func() error { return nil }) // transition to open

	time.Sleep(40 * time.Millisecond)

	if err := cb.Execute(func() error { return errUpstream }); err != errUpstream {
		t.Fatalf("probe should run and surface the error, got %v", err)
	}
	if err := cb.Execute(func() error { return nil }); err != ErrCircuitBreakerOpen {
		t.Fatalf("expected immediate reopen, got %v", err)
	}
}

func TestReset(t *testing.T) {
	cb := NewCircuitBreaker(testConfig())
	trip(t, cb)
	cb.Execute(func() error { return nil }) // transition to open

	cb.Reset()
	if cb.GetState() != StateClosed {
		t.Fatalf("expected closed after reset, got %v", cb.GetState())
	}
	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("execute after reset: %v", err)
	}
}
