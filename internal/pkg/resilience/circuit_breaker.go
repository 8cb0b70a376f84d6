// Package resilience guards calls to the entity store and the message broker with
// circuit breakers so that an outage fails fast as StoreUnavailable.
package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/metrics"

	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

const (
	DefaultMaxRequests           uint32  = 1
	DefaultInterval                      = 30 * time.Second
	DefaultTimeout                       = 10 * time.Second
	DefaultFailureThreshold      uint32  = 5
	DefaultFailureRatioThreshold float64 = 0.6
	DefaultMinRequestsToTrip     uint32  = 10
)

// CircuitBreakerConfig holds configuration for a circuit breaker.
type CircuitBreakerConfig struct {
	Name                  string
	MaxRequests           uint32        // requests let through while half-open
	Interval              time.Duration // closed-state window after which counts reset
	Timeout               time.Duration // open-state duration before probing
	FailureThreshold      uint32        // consecutive failures that trip the breaker
	FailureRatioThreshold float64
	MinRequestsToTrip     uint32

	// IsFailure decides which errors count against the breaker. Nil counts every error.
	IsFailure func(error) bool
}

func DefaultCircuitBreakerConfig(name string) *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Name:                  name,
		MaxRequests:           DefaultMaxRequests,
		Interval:              DefaultInterval,
		Timeout:               DefaultTimeout,
		FailureThreshold:      DefaultFailureThreshold,
		FailureRatioThreshold: DefaultFailureRatioThreshold,
		MinRequestsToTrip:     DefaultMinRequestsToTrip,
	}
}

// CircuitBreaker wraps gobreaker with logging and a state gauge.
type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	name   string
	logger *slog.Logger
}

// NewCircuitBreaker creates a breaker. m may be nil.
func NewCircuitBreaker(config *CircuitBreakerConfig, logger *slog.Logger, m *metrics.Metrics) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= config.FailureThreshold {
				return true
			}
			if counts.Requests >= config.MinRequestsToTrip {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return failureRatio >= config.FailureRatioThreshold
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			if m != nil {
				m.SetCircuitBreakerState(name, int(to))
			}
		},
	}
	if config.IsFailure != nil {
		isFailure := config.IsFailure
		settings.IsSuccessful = func(err error) bool {
			return err == nil || !isFailure(err)
		}
	}

	return &CircuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		name:   config.Name,
		logger: logger,
	}
}

// Execute runs fn through the breaker. When the breaker refuses the call the result is a
// StoreUnavailableError wrapping ErrCircuitOpen; errors returned by fn pass through.
func (c *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.WarnContext(ctx, "circuit breaker refused call", "name", c.name, "reason", err.Error())
		return errs.NewStoreUnavailableErrorWithCause(c.name, ErrCircuitOpen)
	}
	return err
}

func (c *CircuitBreaker) State() gobreaker.State {
	return c.cb.State()
}

func (c *CircuitBreaker) Name() string {
	return c.name
}
