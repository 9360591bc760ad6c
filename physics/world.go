package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// ErrInvalidBody is returned by AddBody for degenerate geometry or mass
var ErrInvalidBody = errors.New("invalid body")

// Config holds world-wide physics settings
type Config struct {
	Gravity     vmath.Vec3F
	Restitution float64
	MaxSpeed    float64
	Substeps    int
}

// DefaultConfig returns the arcade tuning
func DefaultConfig() Config {
	return Config{
		Gravity:     vmath.V3F(0, parameter.Gravity, 0),
		Restitution: parameter.Restitution,
		MaxSpeed:    parameter.MaxBodySpeed,
		Substeps:    parameter.PhysicsSubsteps,
	}
}

// World is a compact rigid-body world in the XY plane
// Dynamic spheres collide against kinematic and static boxes and planes
// Not safe for concurrent use, all calls come from the frame loop
type World struct {
	cfg    Config
	bodies []*rigidBody
	nextID engine.BodyID

	// Reused per substep
	pending []pendingContact
}

type pendingContact struct {
	handler engine.ContactHandler
	ev      engine.ContactEvent
}

// NewWorld creates an empty world
func NewWorld(cfg Config) *World {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	return &World{cfg: cfg}
}

// AddBody validates spec and registers a new body
func (w *World) AddBody(spec engine.BodySpec) (engine.Body, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	w.nextID++
	b := &rigidBody{
		id:      w.nextID,
		kind:    spec.Kind,
		shape:   spec.Shape,
		radius:  spec.Radius,
		half:    spec.HalfExtents,
		normal:  vmath.V3FNormalize(spec.Normal),
		mass:    spec.Mass,
		pos:     spec.Position,
		rot:     spec.Rotation,
		vel:     spec.Velocity,
		prevPos: spec.Position,
		handler: spec.Handler,
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

func validateSpec(spec engine.BodySpec) error {
	switch spec.Shape {
	case engine.ShapeSphere:
		if spec.Radius <= 0 {
			return fmt.Errorf("%w: sphere radius %v", ErrInvalidBody, spec.Radius)
		}
	case engine.ShapeBox:
		h := spec.HalfExtents
		if h.X <= 0 || h.Y <= 0 || h.Z <= 0 {
			return fmt.Errorf("%w: box half extents %+v", ErrInvalidBody, h)
		}
	case engine.ShapePlane:
		if vmath.V3FMagSq(spec.Normal) == 0 {
			return fmt.Errorf("%w: plane normal is zero", ErrInvalidBody)
		}
	default:
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidBody, spec.Shape)
	}

	if spec.Kind == engine.BodyDynamic {
		if spec.Shape != engine.ShapeSphere {
			return fmt.Errorf("%w: only spheres may be dynamic", ErrInvalidBody)
		}
		if spec.Mass <= 0 {
			return fmt.Errorf("%w: dynamic mass %v", ErrInvalidBody, spec.Mass)
		}
	}
	return nil
}

// Bodies returns all bodies in creation order
func (w *World) Bodies() []engine.Body {
	out := make([]engine.Body, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = b
	}
	return out
}

// Step advances the world by dt seconds over fixed substeps
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	// Kinematic velocity follows externally set poses
	for _, b := range w.bodies {
		switch b.kind {
		case engine.BodyKinematic:
			b.vel = vmath.V3FScale(vmath.V3FSub(b.pos, b.prevPos), 1/dt)
			b.prevPos = b.pos
		case engine.BodyStatic:
			b.vel = vmath.Vec3F{}
			b.prevPos = b.pos
		}
	}

	h := dt / float64(w.cfg.Substeps)
	for i := 0; i < w.cfg.Substeps; i++ {
		w.substep(h)
	}
}

func (w *World) substep(h float64) {
	for _, b := range w.bodies {
		if b.kind == engine.BodyDynamic {
			integrate(b, w.cfg.Gravity, w.cfg.MaxSpeed, h)
		}
	}

	w.pending = w.pending[:0]
	for _, b := range w.bodies {
		if b.kind != engine.BodyDynamic {
			continue
		}
		for _, other := range w.bodies {
			if other.kind == engine.BodyDynamic {
				continue
			}
			w.collide(b, other)
		}
	}

	// Handlers run after resolution so they observe settled poses
	for _, p := range w.pending {
		p.handler.OnContact(p.ev)
	}
}

// collide resolves a dynamic sphere against a non-dynamic body
func (w *World) collide(b, other *rigidBody) {
	var n vmath.Vec3F
	var depth float64
	var hit bool

	switch other.shape {
	case engine.ShapeBox:
		n, depth, hit = SphereBox(b.pos, b.radius, other.pos, other.rot.Z, other.half)
	case engine.ShapePlane:
		n = other.normal
		depth, hit = SpherePlane(b.pos, b.radius, other.pos, n)
	case engine.ShapeSphere:
		delta := vmath.V3FSub(b.pos, other.pos)
		dist := vmath.V3FMag(delta)
		if dist < b.radius+other.radius {
			n = vmath.V3FNormalize(delta)
			if dist == 0 {
				n = vmath.V3F(0, 1, 0)
			}
			depth, hit = b.radius+other.radius-dist, true
		}
	}
	if !hit {
		return
	}

	b.pos = vmath.V3FAdd(b.pos, vmath.V3FScale(n, depth))

	relVel := vmath.V3FSub(b.vel, other.vel)
	impact := reflect(b, relVel, n, w.cfg.Restitution, w.cfg.MaxSpeed)
	if impact == 0 {
		// Resting or separating, not reported
		return
	}
	spin(b, relVel, n)

	if b.handler != nil {
		w.pending = append(w.pending, pendingContact{
			handler: b.handler,
			ev:      engine.ContactEvent{Body: b.id, Other: other.id, ImpactVelocity: impact, Normal: n},
		})
	}
	if other.handler != nil {
		w.pending = append(w.pending, pendingContact{
			handler: other.handler,
			ev:      engine.ContactEvent{Body: other.id, Other: b.id, ImpactVelocity: impact, Normal: vmath.V3FScale(n, -1)},
		})
	}
}
