package numstr

import "iter"

// Map applies fn to each element of seq, yielding results lazily in input
// order, one output per input. The result is finite if seq is finite and
// restartable only if seq is restartable.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		seq(func(v T) bool {
			return yield(fn(v))
		})
	}
}

// MapChan applies fn to each value received from ch.
// It is a thin wrapper around [Map].
func MapChan[T, R any](ch <-chan T, fn func(T) R) iter.Seq[R] {
	return Map(chanToIter(ch), fn)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Strings applies a converter to each item eagerly and returns the
// resulting strings in input order.
func Strings[T any](fn func(T) string, items ...T) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = fn(v)
	}
	return out
}
