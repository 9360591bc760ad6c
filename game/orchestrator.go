package game

import (
	"fmt"
	"log"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/physics"
	"github.com/lixenwraith/pong-patrol/system"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// Deps are the collaborators the orchestrator wires into the game
type Deps struct {
	Audio     engine.AudioPlayer
	Cursor    engine.CursorHider
	Scheduler engine.Scheduler
	Roster    []engine.EnemySpec // nil selects the default roster

	// NewWorld creates the physics world when play starts, nil selects the default world
	NewWorld func() engine.PhysicsWorld
}

// Orchestrator owns the game state and assembles every controller inside the physics world
// Tick, Start and Scene must be called from the frame loop goroutine
type Orchestrator struct {
	state    *engine.GameState
	newWorld func() engine.PhysicsWorld

	// Nil until the first tick after Start
	world       engine.PhysicsWorld
	paddle      *system.PaddleController
	ball        *system.BallController
	enemies     []*system.EnemyController
	boundary    *system.BoundaryController
	controllers []system.Controller
	reactors    []*system.CollisionReactor

	cameraX float64
	elapsed float64
	frame   engine.Frame
}

// NewOrchestrator creates the game state in its startup phase
func NewOrchestrator(deps Deps) *Orchestrator {
	newWorld := deps.NewWorld
	if newWorld == nil {
		newWorld = func() engine.PhysicsWorld {
			return physics.NewWorld(physics.DefaultConfig())
		}
	}

	o := &Orchestrator{
		state:    engine.NewGameState(deps.Roster, deps.Scheduler, deps.Audio, deps.Cursor),
		newWorld: newWorld,
	}
	o.state.OnRestart(func() {
		log.Printf("round reset")
	})
	return o
}

// State returns the shared game state
func (o *Orchestrator) State() *engine.GameState {
	return o.state
}

// Start handles the start gesture, safe to call at any time
func (o *Orchestrator) Start() {
	o.state.Start()
}

// Active reports whether the physics world has been created
func (o *Orchestrator) Active() bool {
	return o.world != nil
}

// Tick runs one frame: camera, then the physics gate, then controllers and the world step
func (o *Orchestrator) Tick(f engine.Frame) error {
	o.frame = f
	o.elapsed += f.Delta

	target := f.Pointer.X * parameter.CameraPointerScale
	o.cameraX = vmath.LerpF(o.cameraX, target, parameter.CameraLerpFactor)

	if o.state.Startup() {
		return nil
	}

	if o.world == nil {
		if err := o.activate(f.Viewport); err != nil {
			return fmt.Errorf("activate physics: %w", err)
		}
	}

	// Highlights from the previous frame relax before new contacts
	for _, r := range o.reactors {
		r.Impulse().Advance()
	}

	for _, c := range o.controllers {
		c.Update(f)
	}

	dt := f.Delta
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	o.world.Step(dt)
	return nil
}

// activate builds the world and all gameplay entities
func (o *Orchestrator) activate(vp engine.Viewport) error {
	world := o.newWorld()

	boundary, err := system.NewBoundaryController(world, o.state, vp)
	if err != nil {
		return err
	}
	ball, err := system.NewBallController(world, o.state)
	if err != nil {
		return err
	}
	paddle, err := system.NewPaddleController(world, o.state)
	if err != nil {
		return err
	}

	specs := o.state.Enemies()
	enemies := make([]*system.EnemyController, 0, len(specs))
	for i, spec := range specs {
		e, err := system.NewEnemyController(world, o.state, spec, vp)
		if err != nil {
			return fmt.Errorf("enemy %d: %w", i, err)
		}
		enemies = append(enemies, e)
	}

	o.world = world
	o.boundary = boundary
	o.ball = ball
	o.paddle = paddle
	o.enemies = enemies

	o.controllers = []system.Controller{boundary, ball, paddle}
	o.reactors = []*system.CollisionReactor{boundary.Walls(), paddle.Reactor()}
	for _, e := range enemies {
		o.controllers = append(o.controllers, e)
		o.reactors = append(o.reactors, e.Reactor())
	}

	log.Printf("physics active: %d enemies, viewport %.1fx%.1f", len(enemies), vp.Width, vp.Height)
	return nil
}

// CameraX returns the cosmetic camera offset
func (o *Orchestrator) CameraX() float64 {
	return o.cameraX
}

// Enemies returns the enemy controllers, nil before activation
func (o *Orchestrator) Enemies() []*system.EnemyController {
	return o.enemies
}

// Ball returns the ball controller, nil before activation
func (o *Orchestrator) Ball() *system.BallController {
	return o.ball
}

// Paddle returns the paddle controller, nil before activation
func (o *Orchestrator) Paddle() *system.PaddleController {
	return o.paddle
}

// Scene snapshots everything the renderer draws this frame
func (o *Orchestrator) Scene() engine.Scene {
	snap := o.state.Snapshot()
	scene := engine.Scene{
		Viewport: o.frame.Viewport,
		CameraX:  o.cameraX,
		Elapsed:  o.elapsed,
		Points:   snap.Points,
		Startup:  snap.Startup,
	}
	if o.world == nil {
		return scene
	}

	scene.Sprites = make([]engine.Sprite, 0, len(o.enemies)+2)
	for _, e := range o.enemies {
		scene.Sprites = append(scene.Sprites, sprite(e.Body(), e.Spec().Color, e.Reactor().Impulse().Level()))
	}
	scene.Sprites = append(scene.Sprites,
		sprite(o.paddle.Body(), system.PaddleColor, o.paddle.Reactor().Impulse().Level()),
		sprite(o.ball.Body(), system.BallColor, 0),
	)
	return scene
}

func sprite(b engine.Body, color string, highlight float64) engine.Sprite {
	return engine.Sprite{
		Shape:     b.Shape(),
		Position:  b.Position(),
		Rotation:  b.Rotation(),
		Extents:   b.Extents(),
		Color:     color,
		Highlight: highlight,
	}
}
