// Package tuple is a collection of generic struct types
// that hold a specific number of values, from T0 (no values)
// to T12.
//
// A tuple is the argument aggregate used by the asyncfn and
// staticfn packages: a function of N parameters is called
// through a Callable by passing a TN holding its arguments.
// Two tuple types are identical exactly when their element
// types are identical and in the same order.
package tuple

//go:generate go run github.com/rogpeppe/asyncfn/cmd/genarity -kind tuple -o tuple_gen.go
