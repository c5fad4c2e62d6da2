package pure

// Unit is the no-value type for void argument or result positions. A
// callable with nothing to accept or return instantiates its type parameter
// with Unit.
type Unit struct{}

// Pair tuples two values into one, letting a two-argument callable flow
// through the unary wrapper signatures.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair with full type inference.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
