package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// BallColor is the ball material
const BallColor = "white"

var (
	ballStartPosition = vmath.V3F(parameter.BallStartX, parameter.BallStartY, parameter.BallStartZ)
	ballStartVelocity = vmath.V3F(0, parameter.BallLaunchSpeed, 0)
)

// BallController owns the dynamic ball and re-launches it on every restart pulse
// Integration is left to the physics world
type BallController struct {
	body engine.Body

	// Raised by the restart listener, consumed on the tick goroutine
	respawn atomic.Bool
}

// NewBallController creates the ball at its launch pose and subscribes to restarts
func NewBallController(world engine.PhysicsWorld, state *engine.GameState) (*BallController, error) {
	body, err := world.AddBody(engine.BodySpec{
		Kind:     engine.BodyDynamic,
		Shape:    engine.ShapeSphere,
		Radius:   parameter.BallRadius,
		Mass:     parameter.BallMass,
		Position: ballStartPosition,
		Velocity: ballStartVelocity,
	})
	if err != nil {
		return nil, fmt.Errorf("ball body: %w", err)
	}

	b := &BallController{body: body}
	state.OnRestart(func() {
		b.respawn.Store(true)
	})
	return b, nil
}

// Update applies a pending respawn before the physics step
func (b *BallController) Update(engine.Frame) {
	if b.respawn.Swap(false) {
		b.Respawn()
	}
}

// Respawn restores the launch pose, independent of prior state
func (b *BallController) Respawn() {
	b.body.SetPosition(ballStartPosition)
	b.body.SetVelocity(ballStartVelocity)
	b.body.SetAngularVelocity(vmath.Vec3F{})
}

func (b *BallController) Body() engine.Body { return b.body }
