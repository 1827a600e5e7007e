// Package staticfn lets functions of any number of parameters be
// treated as a single Callable type that takes its arguments packed
// into one tuple and returns the function's result unchanged.
//
// Unlike the asyncfn package, calling a staticfn.Callable never
// blocks: the result type F is whatever the underlying function
// returns (typically a future or a channel) and it is up to the
// caller to wait for it, or to drop it if the result is no
// longer needed. No wrapping takes place, so a call through a
// FuncN costs no more than calling the function directly.
//
// The price is that F is part of the Callable type, so callables
// returning different future types cannot be held in the same
// collection without a conversion supplied by the caller.
package staticfn

//go:generate go run github.com/rogpeppe/asyncfn/cmd/genarity -kind staticfn -o staticfn_gen.go
