package system

import (
	"github.com/lixenwraith/pong-patrol/engine"
)

// Controller computes and applies an entity's pose once per tick
type Controller interface {
	Update(f engine.Frame)
}

// CollisionReactor decorates an entity's contact callback
// On contact: impulse highlight, then the optional entity callback, then the sink (game state)
type CollisionReactor struct {
	impulse engine.Impulse
	inner   engine.ContactHandler
	sink    engine.ContactHandler
}

// NewCollisionReactor wraps onCollide, which may be nil, and forwards every event to sink
func NewCollisionReactor(sink, onCollide engine.ContactHandler) *CollisionReactor {
	return &CollisionReactor{
		inner: onCollide,
		sink:  sink,
	}
}

func (r *CollisionReactor) OnContact(ev engine.ContactEvent) {
	r.impulse.Trigger()
	if r.inner != nil {
		r.inner.OnContact(ev)
	}
	r.sink.OnContact(ev)
}

// Impulse exposes the highlight signal for the renderer and frame advance
func (r *CollisionReactor) Impulse() *engine.Impulse {
	return &r.impulse
}
