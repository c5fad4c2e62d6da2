package purefn

import "github.com/on-the-ground/call_able_go/callable"

// MemoStore stores memoized results keyed by argument.
type MemoStore[T, R any] interface {
	Load(key T) (R, bool)
	Store(key T, value R)
}

// Tableize returns a memoized front for a bound wrapper over comparable
// arguments. At most maxTableSize results are retained; once the table is
// full, further distinct arguments fall through to the wrapper on every
// call. The wrapper must be bound: calling the front through an unbound
// wrapper raises the uninitialized-call condition like Call does.
func Tableize[T comparable, R any](w callable.Func[T, R], maxTableSize uint32) func(T) R {
	memo := make(map[T]R)
	return func(arg T) R {
		if v, ok := memo[arg]; ok {
			return v
		}
		v := w.Call(arg)
		if uint32(len(memo)) < maxTableSize {
			memo[arg] = v
		}
		return v
	}
}

// TableizeWith memoizes through a caller-supplied store, for argument types
// that are not comparable or for caches with their own admission and
// eviction policy.
func TableizeWith[T, R any](w callable.Func[T, R], store MemoStore[T, R]) func(T) R {
	return func(arg T) R {
		if v, ok := store.Load(arg); ok {
			return v
		}
		v := w.Call(arg)
		store.Store(arg, v)
		return v
	}
}
