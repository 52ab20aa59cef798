package ecs

import "github.com/milk9111/platformer/ecs/component"

// World owns entities, their component tables, the event queue and the
// static physics world.
type World struct {
	// generations[id] is the current generation of slot id; slot 0 is unused.
	generations []generation
	alive       []bool
	free        []entityID
	count       int

	tables map[component.ComponentID]store
	events EventQueue

	physics *PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		generations: make([]generation, 1),
		alive:       make([]bool, 1),
		tables:      make(map[component.ComponentID]store),
	}
}

// CreateEntity allocates a new entity, reusing a freed slot when one exists.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		id = entityID(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[id] = true
	w.count++
	return makeEntity(id, w.generations[id])
}

// DestroyEntity removes e and all its components. It reports false for a
// stale or unknown handle.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, t := range w.tables {
		t.remove(id)
	}
	w.alive[id] = false
	w.generations[id]++
	w.free = append(w.free, id)
	w.count--
	return true
}

// IsAlive reports whether e still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) >= len(w.alive) {
		return false
	}
	return w.alive[id] && w.generations[id] == e.generation()
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.count)
	for id := 1; id < len(w.alive); id++ {
		if w.alive[id] {
			out = append(out, makeEntity(entityID(id), w.generations[id]))
		}
	}
	return out
}

// entityFor rebuilds the current handle for a live slot.
func (w *World) entityFor(id entityID) Entity {
	return makeEntity(id, w.generations[id])
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches the static collision world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physics = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physics
}
