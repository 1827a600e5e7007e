// Package asyncfn lets functions of any number of parameters be
// treated as a single Callable type that takes its arguments packed
// into one tuple and blocks until the function's asynchronous
// result is available.
//
// For every arity N from 0 to 12 there is a function type FuncN
// (for example Func2[A0, A1, R, W]) whose Call method unpacks a
// tuple.TN, passes its fields positionally to the function and
// waits on the result W that the function returns. W may be any
// type implementing future.Waiter[R], such as *future.Future[R].
// The OfN functions convert an ordinary function, method value or
// method expression to the corresponding FuncN, inferring all of
// its type parameters:
//
//	func greet(name string) *future.Future[string] {
//		return future.Go(func() string {
//			return "hello " + name
//		})
//	}
//
//	var c asyncfn.Callable[tuple.T1[string], string] = asyncfn.Of1(greet)
//	s, err := c.Call(ctx, tuple.MkT1("Ada"))
//
// A function with more parameters than the largest FuncN has no
// corresponding type and so cannot be used as a Callable; this
// is detected at compile time.
//
// Because the future type does not appear in the Callable interface,
// callables of different underlying types can be stored together.
// See the staticfn package for the variant that exposes the
// function's own result type instead.
package asyncfn

//go:generate go run github.com/rogpeppe/asyncfn/cmd/genarity -kind asyncfn -o asyncfn_gen.go
