package impl

import (
	"context"
	"sync"
	"sync/atomic"
)

// Screen is the lifetime of one UI screen. Tasks started on it are cancelled
// when it closes, and their results are dropped instead of delivered.
// Result callbacks run one at a time, like on a UI thread.
type Screen struct {
	ctx     context.Context
	cancel  context.CancelFunc
	closed  atomic.Bool
	deliver sync.Mutex
	tasks   sync.WaitGroup
}

// NewScreen opens a screen scope bound to parent.
func NewScreen(parent context.Context) *Screen {
	ctx, cancel := context.WithCancel(parent)

	return &Screen{ctx: ctx, cancel: cancel}
}

// Context returns the screen context. It is cancelled on Close.
func (s *Screen) Context() context.Context {
	return s.ctx
}

// Closed reports whether the screen was closed or its parent context ended.
func (s *Screen) Closed() bool {
	return s.closed.Load() || s.ctx.Err() != nil
}

// Close cancels in-flight tasks. It is safe to call from a result callback and more than once.
func (s *Screen) Close() {
	if s.closed.Swap(true) {
		return
	}

	s.cancel()
}

// Go runs task asynchronously and passes its error to done, unless the screen
// closed in the meantime. done may be nil.
func (s *Screen) Go(task func(ctx context.Context) error, done func(err error)) {
	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()

		err := task(s.ctx)

		s.deliver.Lock()
		defer s.deliver.Unlock()

		if s.Closed() || done == nil {
			return
		}
		done(err)
	}()
}

// Wait blocks until every task started with Go has returned.
func (s *Screen) Wait() {
	s.tasks.Wait()
}

// Launch runs a task producing a value on s and delivers the value with its error.
func Launch[T any](s *Screen, task func(ctx context.Context) (T, error), done func(T, error)) {
	var result T
	s.Go(func(ctx context.Context) error {
		var err error
		result, err = task(ctx)

		return err
	}, func(err error) {
		if done != nil {
			done(result, err)
		}
	})
}
