package callable

import (
	"unsafe"

	"github.com/on-the-ground/call_able_go/faults"
	"github.com/on-the-ground/call_able_go/pure"
)

// viewStub is the trampoline signature for View records.
type viewStub[O, T, R any] func(rec viewRecord[O, T, R], recv O, arg T) R

// viewRecord mirrors methodRecord for value-receiver methods.
// stub == nil iff the wrapper is unbound.
type viewRecord[O, T, R any] struct {
	method func(O, T) R
	ident  unsafe.Pointer
	stub   viewStub[O, T, R]
}

func (rec viewRecord[O, T, R]) equal(other viewRecord[O, T, R]) bool {
	if (rec.stub == nil) != (other.stub == nil) {
		return false
	}
	return rec.stub == nil || rec.ident == other.ident
}

func viewCallStub[O, T, R any](rec viewRecord[O, T, R], recv O, arg T) R {
	return rec.method(recv, arg)
}

// View wraps a value-receiver method expression of shape func(O, T) R — the
// read-only counterpart of Method. The dispatched call operates on a copy of
// the receiver, so it cannot mutate the caller's object. The zero View is
// unbound.
type View[O, T, R any] struct {
	rec viewRecord[O, T, R]
}

// BindView wraps a value-receiver method expression such as Counter.Scaled.
// BindView(nil) yields an unbound wrapper.
func BindView[O, T, R any](method func(O, T) R) View[O, T, R] {
	if method == nil {
		return View[O, T, R]{}
	}
	return View[O, T, R]{rec: viewRecord[O, T, R]{
		method: method,
		ident:  funcval(method),
		stub:   viewCallStub[O, T, R],
	}}
}

// IsBound reports whether the wrapper currently holds a method.
func (v View[O, T, R]) IsBound() bool {
	return v.rec.stub != nil
}

// Equal reports whether both wrappers are unbound or bound to the same
// method. Receivers are supplied per call and never compared.
func (v View[O, T, R]) Equal(other View[O, T, R]) bool {
	return v.rec.equal(other.rec)
}

// Call dispatches the bound method against recv. When unbound it reports
// the uninitialized-call condition through the faults package; if the
// installed policy continues, the result is the zero R.
func (v View[O, T, R]) Call(recv O, arg T) R {
	if v.rec.stub == nil {
		faults.Raise(faults.UninitializedCall, "callable.View.Call")
		var zero R
		return zero
	}
	return v.rec.stub(v.rec, recv, arg)
}

// CallIf dispatches against recv and returns the result as an Option. When
// unbound it returns None and performs no call.
func (v View[O, T, R]) CallIf(recv O, arg T) pure.Option[R] {
	if v.rec.stub == nil {
		return pure.None[R]()
	}
	return pure.Some(v.rec.stub(v.rec, recv, arg))
}

// RunIf is the effect form of CallIf: it dispatches for side effects only
// and reports whether the call happened.
func (v View[O, T, R]) RunIf(recv O, arg T) bool {
	if v.rec.stub == nil {
		return false
	}
	v.rec.stub(v.rec, recv, arg)
	return true
}

// CallOrElse dispatches against recv when bound; otherwise it invokes alt
// with the same argument.
func (v View[O, T, R]) CallOrElse(alt func(T) R, recv O, arg T) R {
	if v.rec.stub == nil {
		return alt(arg)
	}
	return v.rec.stub(v.rec, recv, arg)
}
