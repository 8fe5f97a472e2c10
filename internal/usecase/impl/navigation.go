package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "kedai/internal/delivery/context"
	"kedai/internal/domain/entity"
	"kedai/internal/domain/service"
)

// DelayedNavigator moves to a route a fixed delay after a committed mutation.
// A navigation is dropped when its context ends first.
type DelayedNavigator struct {
	next    service.Navigator
	delay   time.Duration
	logger  *slog.Logger
	pending sync.WaitGroup
}

// NewDelayedNavigator creates a DelayedNavigator. A nil next navigator drops every navigation.
func NewDelayedNavigator(next service.Navigator, delay time.Duration, logger *slog.Logger) *DelayedNavigator {
	if delay < 0 {
		delay = 0
	}

	return &DelayedNavigator{
		next:   next,
		delay:  delay,
		logger: logger,
	}
}

// NavigateAfterDelay schedules a navigation to route.
func (n *DelayedNavigator) NavigateAfterDelay(ctx context.Context, route entity.Route) {
	if n == nil || n.next == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	n.pending.Add(1)
	go func() {
		defer n.pending.Done()

		timer := time.NewTimer(n.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			logger.Debug("Navigation dropped", slog.String("route", route.String()))
		case <-timer.C:
			if ctx.Err() != nil {
				logger.Debug("Navigation dropped", slog.String("route", route.String()))

				return
			}
			n.next.Navigate(route)
		}
	}()
}

// Wait blocks until every scheduled navigation has fired or been dropped, or ctx ends.
func (n *DelayedNavigator) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
