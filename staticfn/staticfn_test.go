package staticfn

import (
	"context"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/asyncfn/future"
	"github.com/rogpeppe/asyncfn/tuple"
)

func minimal() *future.Future[struct{}] {
	return future.Ready(struct{}{})
}

func withReq(_ string) *future.Future[string] {
	return future.Go(func() string {
		return "foo"
	})
}

func withRefs(_ string, _ []byte) <-chan string {
	c := make(chan string, 1)
	c <- "asdf"
	return c
}

func maxArity(_, _, _, _, _, _, _, _, _, _, _, _ struct{}) *future.Future[struct{}] {
	return future.Ready(struct{}{})
}

func add(a, b int) int {
	return a + b
}

type test struct {
	a bool
	b uint8
}

func (t *test) bleh() *future.Future[*uint8] {
	return future.Ready(&t.b)
}

type unit = struct{}

// These declarations fail to compile if the adapters
// do not implement Callable.
var (
	_ Callable[tuple.T0, *future.Future[unit]]            = Of0(minimal)
	_ Callable[tuple.T1[string], *future.Future[string]] = Of1(withReq)
	_ Callable[tuple.T2[string, []byte], <-chan string]  = Of2(withRefs)
	_ Callable[tuple.T2[int, int], int]                  = Of2(add)
	_ Callable[tuple.T0, *future.Future[*uint8]]         = Of0((&test{}).bleh)
	_ Callable[tuple.T1[*test], *future.Future[*uint8]]  = Of1((*test).bleh)
)

var _ Callable[tuple.T12[unit, unit, unit, unit, unit, unit, unit, unit, unit, unit, unit, unit], *future.Future[unit]] = Of12(maxArity)

func TestCallReturnsUnderlyingFuture(t *testing.T) {
	f, resolve := future.New[string]()
	c := Of1(func(name string) *future.Future[string] {
		return f
	})
	got := c.Call(tuple.MkT1("Ada"))
	qt.Assert(t, qt.Equals(got, f))

	// Call has not waited for anything.
	_, ok := got.Get()
	qt.Assert(t, qt.IsFalse(ok))

	resolve("foo")
	v, err := got.Wait(context.Background())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, "foo"))
}

func TestCallWithRequest(t *testing.T) {
	v, err := Of1(withReq).Call(tuple.MkT1("Ada")).Wait(context.Background())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, "foo"))
}

func TestCallZeroArguments(t *testing.T) {
	v, err := Of0(minimal).Call(tuple.T0{}).Wait(context.Background())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, unit{}))
}

func TestCallWithReferences(t *testing.T) {
	c := Of2(withRefs).Call(tuple.MkT2("x", []byte("y")))
	qt.Assert(t, qt.Equals(<-c, "asdf"))
}

func TestCallMethodValue(t *testing.T) {
	x := &test{a: true, b: 8}
	p, err := Of0(x.bleh).Call(tuple.T0{}).Wait(context.Background())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(p, &x.b))
}

func TestCallMethodExpression(t *testing.T) {
	x := &test{b: 3}
	p, err := Of1((*test).bleh).Call(tuple.MkT1(x)).Wait(context.Background())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(p, &x.b))
}

func TestCallMaxArity(t *testing.T) {
	var u unit
	f := Of12(maxArity).Call(tuple.MkT12(u, u, u, u, u, u, u, u, u, u, u, u))
	v, err := f.Wait(context.Background())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, u))
}

func TestCallPassesArgumentsInOrder(t *testing.T) {
	sub := Of2(func(a, b int) int {
		return a - b
	})
	qt.Assert(t, qt.Equals(sub.Call(tuple.MkT2(10, 3)), 7))
	qt.Assert(t, qt.Equals(sub.Call(tuple.MkT2(3, 10)), -7))

	digits := Of5(func(a, b, c, d, e int) int {
		return a*10000 + b*1000 + c*100 + d*10 + e
	})
	qt.Assert(t, qt.Equals(digits.Call(tuple.MkT5(1, 2, 3, 4, 5)), 12345))
}

func TestCallDoesNotAllocate(t *testing.T) {
	c := Of2(add)
	args := tuple.MkT2(1, 2)
	var sum int
	allocs := testing.AllocsPerRun(100, func() {
		sum += c.Call(args)
	})
	qt.Assert(t, qt.Equals(allocs, 0.0))
	qt.Assert(t, qt.Equals(sum, 303))
}

func TestDiscardedResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := Of0(func() *future.Future[int] {
		return future.Go(func() int {
			close(started)
			<-release
			return 1
		})
	})
	// Dropping the returned future does not affect the
	// computation behind it.
	c.Call(tuple.T0{})
	<-started
	close(release)
}
