package system

import (
	"fmt"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// Patrol is the horizontal sweep of one enemy
// Right-side patrols start at +width and move left, left-side ones mirror that
type Patrol struct {
	direction engine.Direction
	speed     float64
	margin    float64
	halfWidth float64
	initial   float64
	x         float64
}

// NewPatrol starts a sweep at the edge for viewport width
// margin is how far past the viewport edge the enemy travels before wrapping
func NewPatrol(direction engine.Direction, speed, width, margin float64) *Patrol {
	p := &Patrol{
		direction: direction,
		speed:     speed,
		margin:    margin,
	}
	p.Resize(width)
	return p
}

// Resize recomputes the start edge and restarts the sweep from it
func (p *Patrol) Resize(width float64) {
	p.halfWidth = width / 2
	if p.direction == engine.DirectionRight {
		p.initial = width
	} else {
		p.initial = -width
	}
	p.x = p.initial
}

// Advance moves one tick and returns the position to display this tick
// Once the enemy is fully past the far edge the sweep wraps to the start edge
func (p *Patrol) Advance() (x float64, wrapped bool) {
	if p.direction == engine.DirectionRight {
		p.x -= p.speed
	} else {
		p.x += p.speed
	}
	x = p.x

	if p.direction == engine.DirectionRight {
		wrapped = p.x+p.margin < -p.halfWidth
	} else {
		wrapped = p.x-p.margin > p.halfWidth
	}
	if wrapped {
		p.x = p.initial
	}
	return x, wrapped
}

// X returns the internal sweep coordinate
func (p *Patrol) X() float64 { return p.x }

// Initial returns the start edge
func (p *Patrol) Initial() float64 { return p.initial }

// Bound returns the coordinate the sweep must pass before wrapping
func (p *Patrol) Bound() float64 {
	if p.direction == engine.DirectionRight {
		return -p.halfWidth - p.margin
	}
	return p.halfWidth + p.margin
}

// EnemyController moves a static box along its patrol lane
// Rotation is fixed at creation
type EnemyController struct {
	spec    engine.EnemySpec
	body    engine.Body
	reactor *CollisionReactor
	patrol  *Patrol
	width   float64
}

// NewEnemyController creates the enemy body at its start edge
func NewEnemyController(world engine.PhysicsWorld, sink engine.ContactHandler, spec engine.EnemySpec, vp engine.Viewport) (*EnemyController, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	e := &EnemyController{
		spec:    spec,
		reactor: NewCollisionReactor(sink, nil),
		patrol:  NewPatrol(spec.Direction, spec.Speed, vp.Width, parameter.EnemyWrapMargin),
		width:   vp.Width,
	}

	halfWidth := parameter.EnemyHalfWidthShort
	if spec.Size == engine.SizeLong {
		halfWidth = parameter.EnemyHalfWidthLong
	}
	tilt := -parameter.EnemyTilt
	if spec.Direction == engine.DirectionRight {
		tilt = parameter.EnemyTilt
	}

	body, err := world.AddBody(engine.BodySpec{
		Kind:        engine.BodyStatic,
		Shape:       engine.ShapeBox,
		HalfExtents: vmath.V3F(halfWidth, parameter.EnemyHalfHeight, parameter.EnemyHalfDepth),
		Position:    vmath.V3F(e.patrol.X(), spec.Lane, 0),
		Rotation:    vmath.V3F(0, 0, tilt),
		Handler:     e.reactor,
	})
	if err != nil {
		return nil, fmt.Errorf("enemy body: %w", err)
	}
	e.body = body
	return e, nil
}

// Update advances the patrol one tick, a viewport change restarts the sweep first
func (e *EnemyController) Update(f engine.Frame) {
	if f.Viewport.Width != e.width {
		e.width = f.Viewport.Width
		e.patrol.Resize(e.width)
	}

	x, _ := e.patrol.Advance()
	e.body.SetPosition(vmath.V3F(x, e.spec.Lane, 0))
}

func (e *EnemyController) Spec() engine.EnemySpec { return e.spec }

func (e *EnemyController) Body() engine.Body { return e.body }

func (e *EnemyController) Reactor() *CollisionReactor { return e.reactor }

func (e *EnemyController) Patrol() *Patrol { return e.patrol }
