package callable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/call_able_go/callable"
	"github.com/on-the-ground/call_able_go/faults"
	"github.com/on-the-ground/call_able_go/pure"
)

func square(x int) int { return x * x }
func negate(x int) int { return -x }

// accumulator is a stateful callable object bound through Target.
type accumulator struct {
	total int
}

func (a *accumulator) Invoke(x int) int {
	a.total += x
	return a.total
}

// adder builds a capturing closure; each call mints a distinct instance.
func adder(delta int) func(int) int {
	return func(x int) int { return x + delta }
}

func TestFunc_UnboundState(t *testing.T) {
	var w callable.Func[int, int]

	assert.False(t, w.IsBound())
	assert.True(t, w.CallIf(4).IsNone())
	assert.False(t, w.RunIf(4))
	assert.Equal(t, 42, w.CallOr(42, 4))
}

func TestFunc_BindFreeFunction(t *testing.T) {
	w := callable.Bind(square)

	require.True(t, w.IsBound())
	assert.Equal(t, square(4), w.Call(4))

	res, ok := w.CallIf(4).Get()
	require.True(t, ok)
	assert.Equal(t, 16, res)
}

func TestFunc_BindNilIsUnbound(t *testing.T) {
	w := callable.Bind[int, int](nil)
	assert.False(t, w.IsBound())
	assert.True(t, w.Equal(callable.Func[int, int]{}))
}

func TestFunc_Equality_FreeFunctions(t *testing.T) {
	a := callable.Bind(square)
	b := callable.Bind(square)
	c := callable.Bind(negate)

	assert.True(t, a.Equal(b), "same function, same identity")
	assert.False(t, a.Equal(c), "distinct functions differ")
	assert.False(t, a.Equal(callable.Func[int, int]{}), "bound never equals unbound")

	var u1, u2 callable.Func[int, int]
	assert.True(t, u1.Equal(u2), "unbound wrappers agree")
}

func TestFunc_Equality_ClosureInstances(t *testing.T) {
	c1 := adder(1)
	c2 := adder(1)

	assert.False(t, callable.Bind(c1).Equal(callable.Bind(c2)),
		"behaviorally identical but distinct closures stay unequal")
	assert.True(t, callable.Bind(c1).Equal(callable.Bind(c1)),
		"rebinding the same closure value agrees")
}

func TestFunc_Equality_TargetInstances(t *testing.T) {
	a1 := &accumulator{}
	a2 := &accumulator{}

	w1 := callable.BindTarget[int, int](a1)
	w2 := callable.BindTarget[int, int](a2)

	assert.False(t, w1.Equal(w2), "identity is the address, not the state")
	assert.True(t, w1.Equal(callable.BindTarget[int, int](a1)))
	assert.False(t, w1.Equal(callable.Bind(square)), "kinds never cross-compare")
}

func TestFunc_TargetStateIsShared(t *testing.T) {
	acc := &accumulator{}
	w := callable.BindTarget[int, int](acc)

	assert.Equal(t, 2, w.Call(2))
	assert.Equal(t, 5, w.Call(3))
	assert.Equal(t, 5, acc.total, "calls mutate the caller's instance")

	cp := w
	assert.Equal(t, 10, cp.Call(5), "a wrapper copy is a handle to the same target")
	assert.Equal(t, 10, acc.total)
}

func TestFunc_ClosureStateIsShared(t *testing.T) {
	count := 0
	fn := func(x int) int { count += x; return count }

	w := callable.Bind(fn)
	w.Call(3)
	w.Call(4)
	assert.Equal(t, 7, count, "no hidden copy of captured state")
}

func TestFunc_Rebinding(t *testing.T) {
	w := callable.Bind(square)
	w = callable.Bind(negate)

	assert.Equal(t, -4, w.Call(4))
	assert.True(t, w.Equal(callable.Bind(negate)))
	assert.False(t, w.Equal(callable.Bind(square)), "no trace of the old binding")
}

func TestFunc_CallOr(t *testing.T) {
	bound := callable.Bind(square)
	var unbound callable.Func[int, int]

	assert.Equal(t, 16, bound.CallOr(-1, 4), "bound ignores the alternative")
	assert.Equal(t, -1, unbound.CallOr(-1, 4))
}

func TestFunc_RunIf_VoidShape(t *testing.T) {
	calls := 0
	w := callable.Bind(func(pure.Unit) pure.Unit {
		calls++
		return pure.Unit{}
	})

	assert.True(t, w.RunIf(pure.Unit{}))
	assert.Equal(t, 1, calls, "exactly one call")

	var unbound callable.Func[pure.Unit, pure.Unit]
	assert.False(t, unbound.RunIf(pure.Unit{}))
	assert.Equal(t, 1, calls, "no call while unbound")
}

func TestFunc_UnboundCallRaises(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "default policy raises a panic")
		cond, ok := r.(faults.Condition)
		require.True(t, ok)
		assert.Equal(t, faults.UninitializedCall, cond.Code)
		assert.Equal(t, "callable.Func.Call", cond.Site)
	}()

	var w callable.Func[int, int]
	w.Call(1)
}

// The end-to-end scenario: bind, call, guard, compare.
func TestFunc_SquareScenario(t *testing.T) {
	w := callable.Bind(square)
	assert.Equal(t, 16, w.Call(4))

	res, ok := w.CallIf(4).Get()
	require.True(t, ok)
	assert.Equal(t, 16, res)

	var w2 callable.Func[int, int]
	assert.True(t, w2.CallIf(4).IsNone())
	assert.False(t, w.Equal(w2))
}
