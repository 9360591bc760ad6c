package system

import (
	"fmt"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// PaddleColor is the resting paddle material
const PaddleColor = "lightblue"

// PaddleController drives the kinematic paddle from the pointer
type PaddleController struct {
	body    engine.Body
	reactor *CollisionReactor
}

// NewPaddleController creates the paddle body, contacts are forwarded to sink
func NewPaddleController(world engine.PhysicsWorld, sink engine.ContactHandler) (*PaddleController, error) {
	p := &PaddleController{
		reactor: NewCollisionReactor(sink, nil),
	}

	body, err := world.AddBody(engine.BodySpec{
		Kind:        engine.BodyKinematic,
		Shape:       engine.ShapeBox,
		HalfExtents: vmath.V3F(parameter.PaddleHalfWidth, parameter.PaddleHalfHeight, parameter.PaddleHalfDepth),
		Handler:     p.reactor,
	})
	if err != nil {
		return nil, fmt.Errorf("paddle body: %w", err)
	}
	p.body = body
	return p, nil
}

// PaddlePose maps the pointer to the paddle position and tilt
func PaddlePose(pointer engine.Pointer, vp engine.Viewport) (pos, rot vmath.Vec3F) {
	pos = vmath.V3F(
		pointer.X*(vp.Width/2+parameter.PaddleReachMargin),
		-vp.Height/parameter.PaddleHeightDivisor,
		0,
	)
	rot = vmath.V3F(0, 0, pointer.X*parameter.PaddleMaxTilt)
	return pos, rot
}

// Update writes the pose every tick, the pose is authoritative
func (p *PaddleController) Update(f engine.Frame) {
	pos, rot := PaddlePose(f.Pointer, f.Viewport)
	p.body.SetPosition(pos)
	p.body.SetRotation(rot)
}

func (p *PaddleController) Body() engine.Body { return p.body }

func (p *PaddleController) Reactor() *CollisionReactor { return p.reactor }
