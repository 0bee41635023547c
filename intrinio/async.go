package intrinio

import "context"

// Future is the pending result of a call started with Async.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs call on its own goroutine. Validation and serialization are
// those of the wrapped call, so an argument error surfaces from Await
// without a request being sent.
//
//	f := intrinio.Async(ctx, func(ctx context.Context) (*intrinio.Security, error) {
//		return api.GetSecurityByID(ctx, "AAPL")
//	})
//	sec, err := f.Await(ctx)
func Async[T any](ctx context.Context, call func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = call(ctx)
	}()
	return f
}

// Done is closed once the call has finished.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the call finishes or ctx is cancelled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
