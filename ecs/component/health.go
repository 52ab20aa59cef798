package component

// Health is a hit-point pool for entities that are not player-controlled.
type Health struct {
	Max     int
	Current int
	Dead    bool
}

// NewHealth creates a full Health pool.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount and reports whether this hit was fatal.
func (h *Health) ApplyDamage(amount int) (killed bool) {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
		return true
	}
	return false
}

var HealthComponent = NewComponent[Health]()
