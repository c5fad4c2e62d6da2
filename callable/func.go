package callable

import (
	"github.com/on-the-ground/call_able_go/faults"
	"github.com/on-the-ground/call_able_go/pure"
)

// Func wraps a free callable of shape func(T) R: a top-level function, a
// closure, or a callable object referenced through Target.
//
// The zero Func is unbound. Func is a small value type; copying it copies
// the invocation record only, so every copy is an independent handle to the
// same referenced callable.
type Func[T, R any] struct {
	rec record[T, R]
}

// Bind wraps an existing func value. Binding stores the value as-is and
// allocates nothing. Identity follows the function: two wrappers bound to
// the same function (or the same closure value) compare equal, wrappers
// bound to distinct closure instances compare unequal. Bind(nil) yields an
// unbound wrapper.
func Bind[T, R any](fn func(T) R) Func[T, R] {
	if fn == nil {
		return Func[T, R]{}
	}
	return Func[T, R]{rec: record[T, R]{
		fn:    fn,
		ident: funcval(fn),
		kind:  kindFunc,
		stub:  funcStub[T, R],
	}}
}

// BindTarget wraps a callable object referenced through t. The object is
// never copied: its address is stored, so the caller must keep it alive for
// as long as the wrapper may be invoked, and calls through the wrapper
// mutate the caller's instance. BindTarget(nil) yields an unbound wrapper.
func BindTarget[T, R any](t Target[T, R]) Func[T, R] {
	if t == nil {
		return Func[T, R]{}
	}
	return Func[T, R]{rec: record[T, R]{
		target: t,
		ident:  ifaceData(t),
		kind:   kindTarget,
		stub:   targetStub[T, R],
	}}
}

// IsBound reports whether the wrapper currently holds a callable target.
func (f Func[T, R]) IsBound() bool {
	return f.rec.kind != kindUnbound
}

// Equal reports identity-based equality: both wrappers unbound, or bound the
// same way to the same function or the same object address. Behavioral
// equivalence is never inspected.
func (f Func[T, R]) Equal(other Func[T, R]) bool {
	return f.rec.equal(other.rec)
}

// Call invokes the bound callable. When unbound it reports the
// uninitialized-call condition through the faults package; if the installed
// policy continues, the result is the zero R. Callers unsure of the bound
// state should prefer CallIf, RunIf, or CallOr.
func (f Func[T, R]) Call(arg T) R {
	if f.rec.kind == kindUnbound {
		faults.Raise(faults.UninitializedCall, "callable.Func.Call")
		var zero R
		return zero
	}
	return f.rec.stub(f.rec, arg)
}

// CallIf invokes the bound callable and returns its result as an Option.
// When unbound it returns None and performs no call.
func (f Func[T, R]) CallIf(arg T) pure.Option[R] {
	if f.rec.kind == kindUnbound {
		return pure.None[R]()
	}
	return pure.Some(f.rec.stub(f.rec, arg))
}

// RunIf is the effect form of CallIf: it invokes the bound callable for its
// side effects, discards the result, and reports whether the call happened.
func (f Func[T, R]) RunIf(arg T) bool {
	if f.rec.kind == kindUnbound {
		return false
	}
	f.rec.stub(f.rec, arg)
	return true
}

// CallOr returns the call's result when bound, or alt unchanged when not.
func (f Func[T, R]) CallOr(alt R, arg T) R {
	if f.rec.kind == kindUnbound {
		return alt
	}
	return f.rec.stub(f.rec, arg)
}
