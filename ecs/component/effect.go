package component

// Effect is a short-lived visual. Name selects its style ("jump", "dash",
// "damage", "enemy_death"); Rotation is in degrees.
type Effect struct {
	Name     string
	Rotation float64
}

var EffectComponent = NewComponent[Effect]()
