// Package callable provides non-owning, allocation-free wrappers for storing
// and later invoking a callable behind one uniform call surface.
//
// Call-able Go brings the classic embedded "delegate" pattern to Go: a wrapper
// is a small value type holding a tagged invocation record — a payload slot
// plus a stub trampoline — instead of an interface with hidden boxing.
//
// # What can be bound?
//
// Four callable shapes, three wrapper families:
//   - [Func]: a free function or closure ([Bind]), or a callable object
//     referenced through [Target] ([BindTarget]),
//   - [Method]: a pointer-receiver method expression, with the receiver
//     supplied per call ([BindMethod]),
//   - [View]: a value-receiver method expression, the read-only counterpart
//     of [Method] ([BindView]).
//
// # Why not plain func fields?
//
// A bare func field cannot be compared, carries no bound/unbound protocol,
// and offers no guarded call forms. Wrappers add:
//   - Identity-based equality: two wrappers bound to the same function
//     compare equal; wrappers bound to distinct closure instances or distinct
//     callable objects compare unequal, even when behaviorally identical.
//   - A bound/unbound lifecycle with [Func.IsBound] and fault reporting on
//     uninitialized calls (see package faults).
//   - Guarded call forms: CallIf (returns a pure.Option), RunIf (reports
//     whether the call happened), and CallOr/CallOrElse fallbacks.
//
// # Ownership and sharing
//
// Wrappers never own what they reference. Binding stores a function value or
// an object address; the caller keeps the referent alive for as long as the
// wrapper may be invoked. Copies of a bound wrapper are independent handles
// to the same referent: a call through any copy mutates the one shared
// target, exactly as if the caller held the reference directly. The wrapper
// adds no synchronization of its own.
//
// # Signatures
//
// Every wrapper is generic over one argument type and one result type.
// Multi-argument callables tuple their arguments with pure.Pair; niladic or
// void positions use pure.Unit.
package callable
