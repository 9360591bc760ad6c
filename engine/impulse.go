package engine

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/pong-patrol/parameter"
)

// Impulse is a one-frame highlight signal in [0, ImpulseMagnitude]
// Trigger raises it, the next Advance relaxes it to zero
type Impulse struct {
	bits atomic.Uint64 // float64 bits
}

// Trigger raises the signal to ImpulseMagnitude
func (i *Impulse) Trigger() {
	i.bits.Store(math.Float64bits(parameter.ImpulseMagnitude))
}

// Advance is called once at the start of every frame
func (i *Impulse) Advance() {
	i.bits.Store(0)
}

// Value returns the current signal
func (i *Impulse) Value() float64 {
	return math.Float64frombits(i.bits.Load())
}

// Level returns the signal normalized to [0, 1]
func (i *Impulse) Level() float64 {
	return i.Value() / parameter.ImpulseMagnitude
}
