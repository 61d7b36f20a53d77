package infra

import (
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned by Breaker.Do while calls are being refused.
var ErrBreakerOpen = errors.New("breaker open: dependency unavailable")

// BreakerState is the position of a Breaker.
type BreakerState int

const (
	BreakerClosed   BreakerState = iota // calls pass through
	BreakerOpen                         // calls are refused until the cool-down elapses
	BreakerHalfOpen                     // a few trial calls decide whether to close again
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// BreakerConfig tunes a Breaker.
type BreakerConfig struct {
	// FailureThreshold consecutive failures trip the breaker.
	FailureThreshold int
	// SuccessThreshold consecutive half-open successes close it again.
	SuccessThreshold int
	// CoolDown is how long the breaker stays open before allowing trial calls.
	CoolDown time.Duration
	// Expected reports errors that are normal outcomes rather than faults
	// (a cache miss, for instance). Nil treats every error as a fault.
	Expected func(error) bool
}

// DefaultBreakerConfig suits a local cache: trip quickly, retry soon.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		CoolDown:         15 * time.Second,
	}
}

// Breaker stops calling a dependency after repeated faults so a dead Redis
// costs one refused call instead of a network timeout per request.
type Breaker struct {
	mu        sync.Mutex
	cfg       BreakerConfig
	state     BreakerState
	failures  int
	successes int
	openedAt  time.Time
	now       func() time.Time
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 1
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 1
	}
	return &Breaker{cfg: cfg, now: time.Now}
}

// State returns the current position, moving open to half-open once the
// cool-down has elapsed.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advance()
	return b.state
}

// Do runs fn unless the breaker is open. fn's error is returned unchanged.
func (b *Breaker) Do(fn func() error) error {
	b.mu.Lock()
	b.advance()
	if b.state == BreakerOpen {
		b.mu.Unlock()
		return ErrBreakerOpen
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil || (b.cfg.Expected != nil && b.cfg.Expected(err)) {
		b.recordSuccess()
	} else {
		b.recordFailure()
	}
	return err
}

// advance must be called with mu held.
func (b *Breaker) advance() {
	if b.state == BreakerOpen && b.now().Sub(b.openedAt) >= b.cfg.CoolDown {
		b.state = BreakerHalfOpen
		b.successes = 0
	}
}

func (b *Breaker) recordSuccess() {
	switch b.state {
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = BreakerClosed
			b.failures = 0
		}
	case BreakerClosed:
		b.failures = 0
	}
}

func (b *Breaker) recordFailure() {
	switch b.state {
	case BreakerHalfOpen:
		b.trip()
	case BreakerClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	}
}

func (b *Breaker) trip() {
	b.state = BreakerOpen
	b.openedAt = b.now()
	b.failures = 0
	b.successes = 0
}
