package asyncfn

import "context"

// Callable is implemented by values that can be called with
// an argument aggregate of type Args to produce a value of type Out.
//
// Call blocks until the result is available. It returns a non-nil
// error only if ctx is done before that happens; anything else
// the underlying function produces, including its own errors,
// is part of Out.
type Callable[Args, Out any] interface {
	Call(ctx context.Context, args Args) (Out, error)
}

// CallableFunc adapts an ordinary function to implement Callable.
type CallableFunc[Args, Out any] func(ctx context.Context, args Args) (Out, error)

// Call implements Callable by calling f.
func (f CallableFunc[Args, Out]) Call(ctx context.Context, args Args) (Out, error) {
	return f(ctx, args)
}

// Adapt returns a Callable that converts its argument to the
// aggregate expected by c using in, calls c, and converts the
// result using out.
//
// This allows callables with different argument and result types
// to be stored behind a single request and response type:
//
//	handlers := []asyncfn.Callable[*Request, Response]{
//		asyncfn.Adapt(asyncfn.Of1(getUser), userArgs, userResponse),
//		asyncfn.Adapt(asyncfn.Of2(search), searchArgs, searchResponse),
//	}
func Adapt[In, Args, Out, R any](c Callable[Args, Out], in func(In) Args, out func(Out) R) CallableFunc[In, R] {
	return func(ctx context.Context, arg In) (R, error) {
		v, err := c.Call(ctx, in(arg))
		if err != nil {
			return *new(R), err
		}
		return out(v), nil
	}
}
