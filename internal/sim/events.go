package sim

type EventKind int

const (
	EventEat EventKind = iota
	EventDeath
)

func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventDeath:
		return "death"
	}
	return "unknown"
}

// Event asks the caller to spawn a particle burst of Count at Cell.
type Event struct {
	Kind  EventKind
	Cell  Point
	Count int
}

// ParticleKind picks the burst style for the event.
func (e Event) ParticleKind() ParticleKind {
	if e.Kind == EventDeath {
		return ParticleDebris
	}
	return ParticleSpark
}
