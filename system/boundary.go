package system

import (
	"fmt"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// BoundaryController owns the side walls and the bottom death plane
type BoundaryController struct {
	left   engine.Body
	right  engine.Body
	bottom engine.Body

	// Shared by both side walls
	walls *CollisionReactor

	viewport engine.Viewport
}

// NewBoundaryController creates the three planes and lays them out for vp
// Side-wall contacts score like any other, the bottom plane resets the round directly
func NewBoundaryController(world engine.PhysicsWorld, state *engine.GameState, vp engine.Viewport) (*BoundaryController, error) {
	bc := &BoundaryController{
		walls: NewCollisionReactor(state, nil),
	}

	var err error
	bc.left, err = world.AddBody(engine.BodySpec{
		Kind:    engine.BodyStatic,
		Shape:   engine.ShapePlane,
		Normal:  vmath.V3F(1, 0, 0),
		Handler: bc.walls,
	})
	if err != nil {
		return nil, fmt.Errorf("left wall: %w", err)
	}

	bc.right, err = world.AddBody(engine.BodySpec{
		Kind:    engine.BodyStatic,
		Shape:   engine.ShapePlane,
		Normal:  vmath.V3F(-1, 0, 0),
		Handler: bc.walls,
	})
	if err != nil {
		return nil, fmt.Errorf("right wall: %w", err)
	}

	bc.bottom, err = world.AddBody(engine.BodySpec{
		Kind:   engine.BodyStatic,
		Shape:  engine.ShapePlane,
		Normal: vmath.V3F(0, 1, 0),
		Handler: engine.ContactHandlerFunc(func(engine.ContactEvent) {
			state.Reset()
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("bottom plane: %w", err)
	}

	bc.Layout(vp)
	return bc, nil
}

// Layout positions the planes relative to the viewport
func (bc *BoundaryController) Layout(vp engine.Viewport) {
	bc.viewport = vp
	bc.bottom.SetPosition(vmath.V3F(0, -vp.Height*parameter.DeathPlaneDepth, 0))
	bc.left.SetPosition(vmath.V3F(-vp.Width/2-parameter.WallOffset, 0, 0))
	bc.right.SetPosition(vmath.V3F(vp.Width/2+parameter.WallOffset, 0, 0))
}

// Update re-lays the planes only when the viewport changed
func (bc *BoundaryController) Update(f engine.Frame) {
	if f.Viewport != bc.viewport {
		bc.Layout(f.Viewport)
	}
}

func (bc *BoundaryController) Walls() *CollisionReactor { return bc.walls }

func (bc *BoundaryController) Left() engine.Body { return bc.left }

func (bc *BoundaryController) Right() engine.Body { return bc.right }

func (bc *BoundaryController) Bottom() engine.Body { return bc.bottom }
