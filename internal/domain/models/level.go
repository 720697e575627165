package models

// LevelKind classifies where a price level came from.
type LevelKind string

const (
	LevelSupport    LevelKind = "support"
	LevelResistance LevelKind = "resistance"
	LevelFibonacci  LevelKind = "fibonacci"
)

// Level is a horizontal reference price derived from a series.
type Level struct {
	Value float64   `json:"value"`
	Kind  LevelKind `json:"kind"`
	Label string    `json:"label"`
}

// LevelSet holds both level families. Fractal is ascending by value,
// Fibonacci keeps ratio order with the optional extension last.
type LevelSet struct {
	Fractal   []Level `json:"fractal"`
	Fibonacci []Level `json:"fibonacci"`
}

// All concatenates the fractal levels with the Fibonacci levels.
// No cross-family merge or sort is applied.
func (ls LevelSet) All() []Level {
	out := make([]Level, 0, len(ls.Fractal)+len(ls.Fibonacci))
	out = append(out, ls.Fractal...)
	out = append(out, ls.Fibonacci...)
	return out
}

func (ls LevelSet) Len() int { return len(ls.Fractal) + len(ls.Fibonacci) }
