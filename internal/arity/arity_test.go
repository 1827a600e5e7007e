package arity

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestRange(t *testing.T) {
	as, err := Range(2)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(as, []Arity{{0}, {1}, {2}}))

	as, err = Range(Max)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(as, 13))

	as, err = Range(0)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(as, []Arity{{0}}))
}

func TestRangeNegative(t *testing.T) {
	_, err := Range(-1)
	qt.Assert(t, qt.ErrorMatches(err, `invalid maximum arity -1`))
}

var arityTests = []struct {
	n          int
	params     []string
	args       []string
	typeParams string
	typeArgs   string
	tuple      string
	fields     string
	signature  string
	name       string
	word       string
}{{
	n:          0,
	params:     []string{},
	args:       []string{},
	typeParams: "[R any]",
	typeArgs:   "[R]",
	tuple:      "tuple.T0",
	fields:     "",
	signature:  "",
	name:       "Func0",
	word:       "zero",
}, {
	n:          1,
	params:     []string{"A0"},
	args:       []string{"a0"},
	typeParams: "[A0, R any]",
	typeArgs:   "[A0, R]",
	tuple:      "tuple.T1[A0]",
	fields:     "args.A0",
	signature:  "A0",
	name:       "Func1",
	word:       "one",
}, {
	n:          3,
	params:     []string{"A0", "A1", "A2"},
	args:       []string{"a0", "a1", "a2"},
	typeParams: "[A0, A1, A2, R any]",
	typeArgs:   "[A0, A1, A2, R]",
	tuple:      "tuple.T3[A0, A1, A2]",
	fields:     "args.A0, args.A1, args.A2",
	signature:  "A0, A1, A2",
	name:       "Func3",
	word:       "three",
}, {
	n:          13,
	params:     []string{"A0", "A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10", "A11", "A12"},
	args:       []string{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"},
	typeParams: "[A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R any]",
	typeArgs:   "[A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R]",
	tuple:      "tuple.T13[A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12]",
	fields:     "args.A0, args.A1, args.A2, args.A3, args.A4, args.A5, args.A6, args.A7, args.A8, args.A9, args.A10, args.A11, args.A12",
	signature:  "A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12",
	name:       "Func13",
	word:       "13",
}}

func TestArity(t *testing.T) {
	for _, test := range arityTests {
		t.Run(Arity{test.n}.Name("N"), func(t *testing.T) {
			a := Arity{test.n}
			qt.Assert(t, qt.DeepEquals(a.Params(), test.params))
			qt.Assert(t, qt.DeepEquals(a.Args(), test.args))
			qt.Assert(t, qt.Equals(a.TypeParams("R"), test.typeParams))
			qt.Assert(t, qt.Equals(a.TypeArgs("R"), test.typeArgs))
			qt.Assert(t, qt.Equals(a.Tuple(), test.tuple))
			qt.Assert(t, qt.Equals(a.Fields("args"), test.fields))
			qt.Assert(t, qt.Equals(a.Signature(), test.signature))
			qt.Assert(t, qt.Equals(a.Name("Func"), test.name))
			qt.Assert(t, qt.Equals(a.Word(), test.word))
		})
	}
}

func TestTypeParamsWithoutExtra(t *testing.T) {
	qt.Assert(t, qt.Equals(Arity{0}.TypeParams(), ""))
	qt.Assert(t, qt.Equals(Arity{0}.TypeArgs(), ""))
	qt.Assert(t, qt.Equals(Arity{2}.TypeParams(), "[A0, A1 any]"))
	qt.Assert(t, qt.Equals(Arity{2}.TypeArgs(), "[A0, A1]"))
}

func TestTypeParamsWith(t *testing.T) {
	qt.Assert(t, qt.Equals(Arity{0}.TypeParamsWith("R any, W Waiter[R]"), "[R any, W Waiter[R]]"))
	qt.Assert(t, qt.Equals(Arity{2}.TypeParamsWith("R any, W Waiter[R]"), "[A0, A1 any, R any, W Waiter[R]]"))
}
