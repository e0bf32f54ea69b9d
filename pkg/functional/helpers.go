package f

type Set[T comparable] map[T]struct{}

func NewSet[T comparable]() Set[T] {
	return make(map[T]struct{})
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Contains(item T) bool {
	_, found := s[item]
	return found
}

func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, t := range ts {
		us[i] = f(t)
	}
	return us
}

func Filtered[T any](ts []T, f func(T) bool) []T {
	filtered := make([]T, 0, len(ts))
	for _, t := range ts {
		if f(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// RemoveDuplicates keeps the first occurrence of every item.
// The input slice is left untouched.
func RemoveDuplicates[T comparable](ts []T) []T {
	seen := NewSet[T]()
	return Filtered(ts, func(t T) bool {
		if seen.Contains(t) {
			return false
		}
		seen.Add(t)
		return true
	})
}

// GroupBy buckets valueOf(t) under keyOf(t) for every item.
// keys lists each key once, in the order it was first produced; values within
// a bucket keep input order.
func GroupBy[T any, K comparable, V any](ts []T, keyOf func(T) K, valueOf func(T) V) ([]K, map[K][]V) {
	keys := make([]K, 0)
	groups := make(map[K][]V)
	for _, t := range ts {
		k := keyOf(t)
		if _, found := groups[k]; !found {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], valueOf(t))
	}
	return keys, groups
}
