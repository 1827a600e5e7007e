package asyncfn_test

import (
	"context"
	"fmt"

	"github.com/rogpeppe/asyncfn/asyncfn"
	"github.com/rogpeppe/asyncfn/future"
	"github.com/rogpeppe/asyncfn/tuple"
)

func greet(greeting string, name string) *future.Future[string] {
	return future.Go(func() string {
		return greeting + ", " + name
	})
}

func ExampleOf2() {
	var c asyncfn.Callable[tuple.T2[string, string], string] = asyncfn.Of2(greet)
	s, err := c.Call(context.Background(), tuple.MkT2("hello", "Ada"))
	fmt.Println(s, err)

	// output:
	// hello, Ada <nil>
}
