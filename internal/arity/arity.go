// Package arity holds the vocabulary used by the code generator
// to emit one declaration per supported function arity.
package arity

import (
	"fmt"
	"strings"
)

// Max is the largest number of positional parameters
// that the generated packages support by default.
const Max = 12

// Arity describes a function taking N positional parameters.
type Arity struct {
	N int
}

// Range returns the arities 0 through max inclusive.
func Range(max int) ([]Arity, error) {
	if max < 0 {
		return nil, fmt.Errorf("invalid maximum arity %d", max)
	}
	as := make([]Arity, max+1)
	for i := range as {
		as[i].N = i
	}
	return as, nil
}

// Params returns the type parameter names A0 through A(N-1).
func (a Arity) Params() []string {
	ps := make([]string, a.N)
	for i := range ps {
		ps[i] = fmt.Sprintf("A%d", i)
	}
	return ps
}

// Args returns the lower-case value names a0 through a(N-1).
func (a Arity) Args() []string {
	ps := make([]string, a.N)
	for i := range ps {
		ps[i] = fmt.Sprintf("a%d", i)
	}
	return ps
}

// TypeParams returns a type parameter list holding the
// arity's parameters followed by extra, all constrained by any,
// for example "[A0, A1, R any]". It returns the empty
// string when there are no parameters at all.
func (a Arity) TypeParams(extra ...string) string {
	ps := append(a.Params(), extra...)
	if len(ps) == 0 {
		return ""
	}
	return "[" + strings.Join(ps, ", ") + " any]"
}

// TypeParamsWith returns a type parameter list holding the
// arity's parameters, constrained by any, followed by the literal
// text tail, for example "[A0, A1 any, R any, W Waiter[R]]".
func (a Arity) TypeParamsWith(tail string) string {
	ps := a.Params()
	if len(ps) == 0 {
		return "[" + tail + "]"
	}
	return "[" + strings.Join(ps, ", ") + " any, " + tail + "]"
}

// TypeArgs is like TypeParams but without the constraint,
// for example "[A0, A1, R]".
func (a Arity) TypeArgs(extra ...string) string {
	ps := append(a.Params(), extra...)
	if len(ps) == 0 {
		return ""
	}
	return "[" + strings.Join(ps, ", ") + "]"
}

// Tuple returns the tuple type that aggregates the arity's
// parameters, for example "tuple.T2[A0, A1]".
func (a Arity) Tuple() string {
	return fmt.Sprintf("tuple.T%d%s", a.N, a.TypeArgs())
}

// Fields returns the tuple fields of v as a comma-separated
// argument list, for example "args.A0, args.A1".
func (a Arity) Fields(v string) string {
	ps := a.Params()
	for i, p := range ps {
		ps[i] = v + "." + p
	}
	return strings.Join(ps, ", ")
}

// Signature returns the comma-separated parameter types,
// for example "A0, A1".
func (a Arity) Signature() string {
	return strings.Join(a.Params(), ", ")
}

// Name returns prefix with the arity appended, for example "Func2".
func (a Arity) Name(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, a.N)
}

// Word returns the English word used in generated doc comments,
// for example "two".
func (a Arity) Word() string {
	if a.N < len(words) {
		return words[a.N]
	}
	return fmt.Sprint(a.N)
}

var words = []string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
}
