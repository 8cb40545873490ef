package valuegen

import "github.com/covarray/covarray/numid"

// Generator iterates over every value tuple of one PC plus the parameter
// being added. MaxValues holds the level of each PC member followed by the
// level of the joining parameter, so len(MaxValues) == strength.
type Generator[V numid.Unsigned] struct {
	MaxValues []V
}

// New builds a Generator for pc (parameter indices, length strength-1)
// plus atParameter, reading each member's level out of parameters.
func New[V numid.Unsigned](parameters []V, atParameter int, pc []int) *Generator[V] {
	maxValues := make([]V, len(pc)+1)
	for i, p := range pc {
		maxValues[i] = parameters[p]
	}
	maxValues[len(pc)] = parameters[atParameter]
	return &Generator[V]{MaxValues: maxValues}
}

// NextArray advances values by one, carrying from the last position
// (the joining parameter's value) toward the first (big-endian carry:
// the rightmost position is least significant). Returns false once the
// tuple space is exhausted.
func (g *Generator[V]) NextArray(values []V) bool {
	index := len(values) - 1
	values[index]++
	for index > 0 && values[index] == g.MaxValues[index] {
		values[index] = 0
		values[index-1]++
		index--
	}
	return values[0] != g.MaxValues[0]
}

// NextVector is NextArray under the original's second name for it; Go's
// slices make the fixed-array/growable-vector distinction the original
// drew moot.
func (g *Generator[V]) NextVector(values []V) bool {
	return g.NextArray(values)
}

// SkipArray advances values by skip positions in one step, used to jump
// past a fully-covered coverage-map word without visiting each of its
// bits individually.
func (g *Generator[V]) SkipArray(values []V, skip V) bool {
	index := len(values) - 1
	values[index] += skip

	value := values[index]
	max := g.MaxValues[index]
	for index > 0 && value >= max {
		values[index] = value % max
		values[index-1] += value / max
		index--
		value = values[index]
		max = g.MaxValues[index]
	}
	return index != 0 || value < max
}

// NextVectorInverse advances values by one, carrying from the first
// position (a PC member) toward the last (little-endian carry), so a PC's
// own members advance before the joining parameter's value.
func (g *Generator[V]) NextVectorInverse(values []V) bool {
	last := len(values) - 1
	index := 0
	values[0]++
	for index < last && values[index] == g.MaxValues[index] {
		values[index] = 0
		values[index+1]++
		index++
	}
	return values[last] != g.MaxValues[last]
}
