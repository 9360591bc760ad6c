package engine

import (
	"github.com/lixenwraith/pong-patrol/vmath"
)

// BodyID identifies a body inside a physics world
type BodyID uint32

// BodyKind is the physics classification of a body
type BodyKind int

const (
	// BodyDynamic bodies are integrated by the world
	BodyDynamic BodyKind = iota
	// BodyKinematic bodies are posed externally every tick
	BodyKinematic
	// BodyStatic bodies never move on their own, but may be repositioned
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	}
	return "unknown"
}

// Shape is the collision geometry of a body
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
	ShapePlane
)

// ContactEvent reports a touch between two bodies
// ImpactVelocity is the magnitude of the relative velocity along Normal
type ContactEvent struct {
	Body           BodyID
	Other          BodyID
	ImpactVelocity float64
	Normal         vmath.Vec3F
}

// ContactHandler receives contact events for a body
type ContactHandler interface {
	OnContact(ev ContactEvent)
}

// ContactHandlerFunc adapts a function to ContactHandler
type ContactHandlerFunc func(ev ContactEvent)

func (f ContactHandlerFunc) OnContact(ev ContactEvent) { f(ev) }

// BodySpec describes a body to create
// Radius applies to spheres, HalfExtents to boxes, Normal to planes
type BodySpec struct {
	Kind        BodyKind
	Shape       Shape
	Radius      float64
	HalfExtents vmath.Vec3F
	Normal      vmath.Vec3F
	Mass        float64

	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Velocity vmath.Vec3F

	Handler ContactHandler
}

// Body is a handle to a body owned by a physics world
type Body interface {
	ID() BodyID
	Kind() BodyKind
	Shape() Shape
	Extents() vmath.Vec3F

	Position() vmath.Vec3F
	Rotation() vmath.Vec3F
	Velocity() vmath.Vec3F
	AngularVelocity() vmath.Vec3F

	SetPosition(p vmath.Vec3F)
	SetRotation(r vmath.Vec3F)
	SetVelocity(v vmath.Vec3F)
	SetAngularVelocity(w vmath.Vec3F)
}

// PhysicsWorld is the physics collaborator
type PhysicsWorld interface {
	AddBody(spec BodySpec) (Body, error)
	Step(dt float64)
	Bodies() []Body
}

// Cue identifies an audio cue
type Cue int

const (
	CueBackground Cue = iota // Looping background track
	CuePing                  // Contact ping
	CueSpawn                 // Round reset
	CueCount
)

func (c Cue) String() string {
	switch c {
	case CueBackground:
		return "background"
	case CuePing:
		return "ping"
	case CueSpawn:
		return "spawn"
	}
	return "unknown"
}

// AudioPlayer is the audio collaborator
// restart=true plays the cue from time zero even if it is already playing
type AudioPlayer interface {
	Play(cue Cue, restart bool)
}

// CursorHider hides the input cursor once play starts
type CursorHider interface {
	HideCursor()
}

// Viewport is the visible play area in world units
type Viewport struct {
	Width, Height float64
}

// Pointer is the pointer position normalized to [-1, 1] per axis, Y up
type Pointer struct {
	X, Y float64
}

// Frame carries per-tick inputs to controllers
type Frame struct {
	// Delta is the elapsed time since the previous tick, in seconds
	Delta    float64
	Pointer  Pointer
	Viewport Viewport
}
