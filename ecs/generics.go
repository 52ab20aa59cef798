package ecs

import "github.com/milk9111/platformer/ecs/component"

func tableFor[T any](w *World, kind component.ComponentKind[T], create bool) *table[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.tables[kind.ID()]; ok {
		t, _ := s.(*table[T])
		return t
	}
	if !create {
		return nil
	}
	t := &table[T]{}
	w.tables[kind.ID()] = t
	return t
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	tableFor(w, kind, true).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	t := tableFor(w, kind, false)
	if t == nil {
		return nil, false
	}
	return t.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	t := tableFor(w, kind, false)
	if t == nil {
		return false
	}
	return t.remove(e.id())
}

// ForEach visits every live entity holding kind. fn may create or destroy
// entities; entities destroyed mid-iteration are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	t := tableFor(w, kind, false)
	if t == nil || fn == nil {
		return
	}
	for _, id := range t.snapshot() {
		if !w.alive[id] {
			continue
		}
		v, ok := t.get(id)
		if !ok {
			continue
		}
		fn(w.entityFor(id), v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	tb := tableFor(w, kb, false)
	if tb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := tb.get(e.id()); ok {
			fn(e, a, b)
		}
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	tc := tableFor(w, kc, false)
	if tc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := tc.get(e.id()); ok {
			fn(e, a, b, c)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	td := tableFor(w, kd, false)
	if td == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := td.get(e.id()); ok {
			fn(e, a, b, c, d)
		}
	})
}

// First returns the first live entity holding kind. Handy for singletons
// such as the player.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	t := tableFor(w, kind, false)
	if t == nil {
		return 0, nil, false
	}
	for i, id := range t.dense {
		if w.alive[id] {
			return w.entityFor(id), t.values[i], true
		}
	}
	return 0, nil, false
}

// Count returns the number of live entities holding kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	t := tableFor(w, kind, false)
	if t == nil {
		return 0
	}
	return t.len()
}
