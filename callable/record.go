package callable

import "unsafe"

// Target is a callable object invoked through a stored reference.
//
// Implement it on a pointer receiver and bind the pointer: the referenced
// address is the wrapper's identity, and the object's state is shared with
// the wrapper, never copied into it. Boxing a non-pointer value would mint a
// fresh identity on every binding.
type Target[T, R any] interface {
	Invoke(arg T) R
}

// bindKind tags which payload slot of a record is live. It stands in for the
// stub-pointer comparison of classic delegate records: each kind has exactly
// one stub per instantiation, so equal kinds imply equal stubs.
type bindKind uint8

const (
	kindUnbound bindKind = iota
	kindFunc    // free function or closure, identity = funcval address
	kindTarget  // callable object, identity = object address
)

// stub is the trampoline signature for Func records. The record travels by
// value so that the indirect stub call never forces a wrapper copy to escape.
type stub[T, R any] func(rec record[T, R], arg T) R

// record is the invocation record behind Func: two payload slots, the
// identity of whichever slot is live, the bind kind, and the stub that
// reinterprets the payload. Exactly one payload slot is meaningful at a
// time, selected by kind.
type record[T, R any] struct {
	fn     func(T) R
	target Target[T, R]
	ident  unsafe.Pointer
	kind   bindKind
	stub   stub[T, R]
}

// equal reports identity-based record equality: same bind kind, and either
// both records unbound or their stored identities matching. Two bindings of
// one top-level function agree on identity; closures and callable objects
// compare by address, so behaviorally identical but distinct instances stay
// unequal.
func (rec record[T, R]) equal(other record[T, R]) bool {
	if rec.kind != other.kind {
		return false
	}
	return rec.kind == kindUnbound || rec.ident == other.ident
}

// funcStub trampolines to the stored free callable.
func funcStub[T, R any](rec record[T, R], arg T) R { return rec.fn(arg) }

// targetStub trampolines to the stored callable object.
func targetStub[T, R any](rec record[T, R], arg T) R { return rec.target.Invoke(arg) }

// funcval returns the address of the runtime funcval backing f, which must
// be of a func type. Top-level functions and method expressions are backed
// by one static funcval each; every capturing closure evaluation mints a
// fresh one.
func funcval[F any](f F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}

// ifaceData returns the data word of an interface value: for a
// pointer-backed Target, the address of the referenced object.
func ifaceData(i any) unsafe.Pointer {
	type iface struct {
		tab  unsafe.Pointer
		data unsafe.Pointer
	}
	return (*iface)(unsafe.Pointer(&i)).data
}
