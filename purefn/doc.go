// Package purefn memoizes calls through bound wrappers.
//
// Tableize is not just a cache bolted onto a wrapper.
// Tableize is a tool that *forces the caller to ask*:
//
//	→ "Is the callable behind this wrapper really pure?"
//
// Memoization is only sound when it is: a memoized stateful target returns
// stale results by construction. If the answer is yes, Tableize turns any
// bound Func into a table-backed front with a bounded footprint.
package purefn
