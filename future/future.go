// Package future provides a value that becomes available at some
// point after it is created, which is the asynchronous result
// returned by the functions that the asyncfn package adapts.
//
// A Future imposes no scheduling policy: it can be resolved from
// any goroutine, and any number of goroutines may wait on it.
// Discarding a Future does not stop the computation that will
// resolve it.
package future

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Waiter is implemented by values that can be waited on
// for a result of type T.
type Waiter[T any] interface {
	// Wait blocks until the result is available or ctx is done.
	// It returns a non-nil error only when ctx is done first.
	Wait(ctx context.Context) (T, error)
}

var _ Waiter[int] = (*Future[int])(nil)

// Future represents a value of type T that will be available
// once the future has been resolved. Methods on a Future may
// be called concurrently.
//
// A Future must be created with New, Ready or Go. The zero
// Future is never resolved: Wait blocks until ctx is done
// and Done returns a nil channel.
type Future[T any] struct {
	once sync.Once
	done chan struct{}

	// The fields below are written once before done is closed.
	val      T
	panicked bool
	panicVal any
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// New returns an unresolved future and a function that resolves
// it with a value. Only the first call to resolve has any effect.
func New[T any]() (f *Future[T], resolve func(T)) {
	f = newFuture[T]()
	return f, f.resolve
}

// Ready returns a future that is already resolved to v.
func Ready[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.resolve(v)
	return f
}

// Go calls fn in a new goroutine and returns a future that is
// resolved with its result.
//
// If fn panics, the panic is recovered and the same value
// is passed to panic by every subsequent call to Wait.
// If fn calls runtime.Goexit, the future is resolved
// to the zero value of T.
func Go[T any](fn func() T) *Future[T] {
	f := newFuture[T]()
	go func() {
		normal := false
		defer func() {
			if normal {
				return
			}
			// Since Go 1.21 a panicking goroutine always
			// recovers a non-nil value, so nil means Goexit.
			r := recover()
			if r == nil {
				f.resolve(*new(T))
				return
			}
			f.once.Do(func() {
				f.panicked = true
				f.panicVal = r
				close(f.done)
			})
		}()
		v := fn()
		normal = true
		f.resolve(v)
	}()
	return f
}

func (f *Future[T]) resolve(v T) {
	f.once.Do(func() {
		f.val = v
		close(f.done)
	})
}

// Done returns a channel that is closed when the future
// has been resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future is resolved and returns its value.
// If ctx is done first, it returns the zero value and ctx.Err().
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		// Prefer the value if both are ready.
		select {
		case <-f.done:
		default:
			return *new(T), ctx.Err()
		}
	}
	return f.result(), nil
}

// Get returns the value of the future without blocking and
// reports whether the future has been resolved.
func (f *Future[T]) Get() (T, bool) {
	select {
	case <-f.done:
		return f.result(), true
	default:
		return *new(T), false
	}
}

func (f *Future[T]) result() T {
	if f.panicked {
		panic(f.panicVal)
	}
	return f.val
}

// Then returns a future that is resolved to g applied
// to the value of f. The caller does not block.
func Then[T, U any](f *Future[T], g func(T) U) *Future[U] {
	return Go(func() U {
		<-f.done
		return g(f.result())
	})
}

// All waits for all the given futures and returns their values
// in the same order. If ctx is done before all the futures
// have been resolved, it returns ctx.Err().
//
// If any of the futures was resolved by a panic, All panics
// in the calling goroutine with the first such value.
func All[T any](ctx context.Context, fs ...*Future[T]) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range fs {
		g.Go(func() error {
			select {
			case <-f.done:
				return nil
			case <-gctx.Done():
				return ctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	vals := make([]T, len(fs))
	for i, f := range fs {
		vals[i] = f.result()
	}
	return vals, nil
}
