package ecs

// store is the type-erased view of a component table the world needs for
// entity teardown.
type store interface {
	remove(id entityID) bool
	len() int
}

// table is a sparse set of *T keyed by entity slot. dense and values stay
// packed; sparse maps a slot to its dense index plus one.
type table[T any] struct {
	sparse []int
	dense  []entityID
	values []*T
}

func (t *table[T]) index(id entityID) (int, bool) {
	if int(id) >= len(t.sparse) {
		return 0, false
	}
	i := t.sparse[id] - 1
	return i, i >= 0
}

func (t *table[T]) get(id entityID) (*T, bool) {
	i, ok := t.index(id)
	if !ok {
		return nil, false
	}
	return t.values[i], true
}

func (t *table[T]) set(id entityID, v *T) {
	if i, ok := t.index(id); ok {
		t.values[i] = v
		return
	}
	if need := int(id) + 1; need > len(t.sparse) {
		t.sparse = append(t.sparse, make([]int, need-len(t.sparse))...)
	}
	t.dense = append(t.dense, id)
	t.values = append(t.values, v)
	t.sparse[id] = len(t.dense)
}

func (t *table[T]) remove(id entityID) bool {
	i, ok := t.index(id)
	if !ok {
		return false
	}
	last := len(t.dense) - 1
	moved := t.dense[last]

	t.dense[i] = moved
	t.values[i] = t.values[last]
	t.sparse[moved] = i + 1

	t.values[last] = nil
	t.dense = t.dense[:last]
	t.values = t.values[:last]
	t.sparse[id] = 0
	return true
}

func (t *table[T]) len() int {
	return len(t.dense)
}

// snapshot copies the slot list so callers may add or destroy entities while
// iterating.
func (t *table[T]) snapshot() []entityID {
	return append([]entityID(nil), t.dense...)
}
