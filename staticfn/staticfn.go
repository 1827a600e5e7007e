package staticfn

// Callable is implemented by values that can be called with
// an argument aggregate of type Args, returning a value of type F
// that the caller drives to completion.
type Callable[Args, F any] interface {
	Call(args Args) F
}
