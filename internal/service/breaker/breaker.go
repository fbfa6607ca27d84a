// Package breaker guards calls to the external statistics provider.
package breaker

import (
	"errors"
	"time"

	drepo "DeceptionIndex/internal/domain/repository"

	cb "github.com/sony/gobreaker"
)

// ErrOpen is returned while the breaker rejects calls.
var ErrOpen = errors.New("provider circuit open")

type Breaker struct{ cb *cb.CircuitBreaker }

// New builds a breaker that opens after maxFailures consecutive provider
// failures and half-opens after openTimeout. Domain misses such as an unknown
// player do not count as failures.
func New(name string, maxFailures uint32, openTimeout time.Duration, onChange func(from, to string)) *Breaker {
	st := cb.Settings{Name: name}
	st.Timeout = openTimeout
	st.ReadyToTrip = func(counts cb.Counts) bool {
		return counts.ConsecutiveFailures >= maxFailures
	}
	st.IsSuccessful = func(err error) bool {
		return err == nil ||
			errors.Is(err, drepo.ErrPlayerNotFound) ||
			errors.Is(err, drepo.ErrMissingColumns)
	}
	if onChange != nil {
		st.OnStateChange = func(_ string, from, to cb.State) { onChange(from.String(), to.String()) }
	}
	return &Breaker{cb: cb.NewCircuitBreaker(st)}
}

// Execute runs fn through the breaker. Rejections are reported as ErrOpen.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	v, err := b.cb.Execute(fn)
	if errors.Is(err, cb.ErrOpenState) || errors.Is(err, cb.ErrTooManyRequests) {
		return nil, ErrOpen
	}
	return v, err
}

// State returns the current breaker state name.
func (b *Breaker) State() string { return b.cb.State().String() }
