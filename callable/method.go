package callable

import (
	"unsafe"

	"github.com/on-the-ground/call_able_go/faults"
	"github.com/on-the-ground/call_able_go/pure"
)

// methodStub is the trampoline signature for Method records.
type methodStub[O, T, R any] func(rec methodRecord[O, T, R], recv *O, arg T) R

// methodRecord is the invocation record behind Method: the method expression
// itself (self-contained, no receiver), its identity, and the stub.
// stub == nil iff the wrapper is unbound.
type methodRecord[O, T, R any] struct {
	method func(*O, T) R
	ident  unsafe.Pointer
	stub   methodStub[O, T, R]
}

func (rec methodRecord[O, T, R]) equal(other methodRecord[O, T, R]) bool {
	if (rec.stub == nil) != (other.stub == nil) {
		return false
	}
	return rec.stub == nil || rec.ident == other.ident
}

func methodCallStub[O, T, R any](rec methodRecord[O, T, R], recv *O, arg T) R {
	return rec.method(recv, arg)
}

// Method wraps a pointer-receiver method expression of shape func(*O, T) R.
// Binding fixes the method only; the receiver is supplied on every call and
// is no part of the wrapper's identity. The zero Method is unbound.
type Method[O, T, R any] struct {
	rec methodRecord[O, T, R]
}

// BindMethod wraps a method expression such as (*Counter).Add. Method
// expressions are self-contained values with stable identity, so two
// wrappers bound to the same method compare equal. BindMethod(nil) yields an
// unbound wrapper.
func BindMethod[O, T, R any](method func(*O, T) R) Method[O, T, R] {
	if method == nil {
		return Method[O, T, R]{}
	}
	return Method[O, T, R]{rec: methodRecord[O, T, R]{
		method: method,
		ident:  funcval(method),
		stub:   methodCallStub[O, T, R],
	}}
}

// IsBound reports whether the wrapper currently holds a method.
func (m Method[O, T, R]) IsBound() bool {
	return m.rec.stub != nil
}

// Equal reports whether both wrappers are unbound or bound to the same
// method. Receivers are supplied per call and never compared.
func (m Method[O, T, R]) Equal(other Method[O, T, R]) bool {
	return m.rec.equal(other.rec)
}

// Call dispatches the bound method against recv. When unbound it reports
// the uninitialized-call condition through the faults package; if the
// installed policy continues, the result is the zero R.
func (m Method[O, T, R]) Call(recv *O, arg T) R {
	if m.rec.stub == nil {
		faults.Raise(faults.UninitializedCall, "callable.Method.Call")
		var zero R
		return zero
	}
	return m.rec.stub(m.rec, recv, arg)
}

// CallIf dispatches against recv and returns the result as an Option. When
// unbound it returns None and performs no call.
func (m Method[O, T, R]) CallIf(recv *O, arg T) pure.Option[R] {
	if m.rec.stub == nil {
		return pure.None[R]()
	}
	return pure.Some(m.rec.stub(m.rec, recv, arg))
}

// RunIf is the effect form of CallIf: it dispatches for side effects only
// and reports whether the call happened.
func (m Method[O, T, R]) RunIf(recv *O, arg T) bool {
	if m.rec.stub == nil {
		return false
	}
	m.rec.stub(m.rec, recv, arg)
	return true
}

// CallOrElse dispatches against recv when bound; otherwise it invokes alt
// with the same argument. The fallback is a callable rather than a value: a
// method has no natural default result independent of a receiver.
func (m Method[O, T, R]) CallOrElse(alt func(T) R, recv *O, arg T) R {
	if m.rec.stub == nil {
		return alt(arg)
	}
	return m.rec.stub(m.rec, recv, arg)
}
