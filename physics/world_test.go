package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/vmath"
)

const eps = 1e-9

type recorder struct {
	events []engine.ContactEvent
}

func (r *recorder) OnContact(ev engine.ContactEvent) {
	r.events = append(r.events, ev)
}

func noGravity() Config {
	return Config{Restitution: 1, MaxSpeed: 100, Substeps: 1}
}

func mustAdd(t *testing.T, w *World, spec engine.BodySpec) engine.Body {
	t.Helper()
	b, err := w.AddBody(spec)
	if err != nil {
		t.Fatalf("AddBody failed: %v", err)
	}
	return b
}

func ballSpec(pos, vel vmath.Vec3F) engine.BodySpec {
	return engine.BodySpec{
		Kind:     engine.BodyDynamic,
		Shape:    engine.ShapeSphere,
		Radius:   0.3,
		Mass:     1,
		Position: pos,
		Velocity: vel,
	}
}

// TestGravityIntegration verifies a free ball accelerates downward
func TestGravityIntegration(t *testing.T) {
	w := NewWorld(DefaultConfig())
	ball := mustAdd(t, w, ballSpec(vmath.V3F(0, 3, 0), vmath.Vec3F{}))

	w.Step(0.1)

	if ball.Position().Y >= 3 {
		t.Errorf("Expected ball to fall, y=%f", ball.Position().Y)
	}
	if !vmath.ApproxEqual(ball.Velocity().Y, -3, 1e-6) {
		t.Errorf("Expected velocity -3 after 0.1s at g=-30, got %f", ball.Velocity().Y)
	}
}

// TestPlaneBounceReportsImpact verifies reflection and contact dispatch to the plane handler
func TestPlaneBounceReportsImpact(t *testing.T) {
	w := NewWorld(noGravity())
	rec := &recorder{}
	floor := mustAdd(t, w, engine.BodySpec{
		Kind:    engine.BodyStatic,
		Shape:   engine.ShapePlane,
		Normal:  vmath.V3F(0, 1, 0),
		Handler: rec,
	})
	ball := mustAdd(t, w, ballSpec(vmath.V3F(0, 0.5, 0), vmath.V3F(0, -10, 0)))

	w.Step(0.05)

	if len(rec.events) != 1 {
		t.Fatalf("Expected 1 contact event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Body != floor.ID() || ev.Other != ball.ID() {
		t.Errorf("Expected event body=%d other=%d, got %+v", floor.ID(), ball.ID(), ev)
	}
	if !vmath.ApproxEqual(ev.ImpactVelocity, 10, eps) {
		t.Errorf("Expected impact velocity 10, got %f", ev.ImpactVelocity)
	}
	if !vmath.V3FApproxEqual(ev.Normal, vmath.V3F(0, -1, 0), eps) {
		t.Errorf("Expected plane-side normal (0,-1,0), got %+v", ev.Normal)
	}
	if !vmath.ApproxEqual(ball.Velocity().Y, 10, eps) {
		t.Errorf("Expected reflected velocity 10, got %f", ball.Velocity().Y)
	}
	if ball.Position().Y < 0.3-eps {
		t.Errorf("Expected ball pushed out of the plane, y=%f", ball.Position().Y)
	}
}

// TestSeparatingContactNotReported verifies overlapping but receding bodies raise no event
func TestSeparatingContactNotReported(t *testing.T) {
	w := NewWorld(noGravity())
	rec := &recorder{}
	mustAdd(t, w, engine.BodySpec{Kind: engine.BodyStatic, Shape: engine.ShapePlane, Normal: vmath.V3F(0, 1, 0), Handler: rec})
	ball := mustAdd(t, w, ballSpec(vmath.V3F(0, 0.1, 0), vmath.V3F(0, 5, 0)))

	w.Step(0.01)

	if len(rec.events) != 0 {
		t.Errorf("Expected no events, got %d", len(rec.events))
	}
	if ball.Velocity().Y != 5 {
		t.Errorf("Expected velocity unchanged, got %f", ball.Velocity().Y)
	}
}

// TestKinematicVelocityDerived verifies kinematic velocity follows pose changes
func TestKinematicVelocityDerived(t *testing.T) {
	w := NewWorld(noGravity())
	paddle := mustAdd(t, w, engine.BodySpec{
		Kind:        engine.BodyKinematic,
		Shape:       engine.ShapeBox,
		HalfExtents: vmath.V3F(1, 0.25, 0.5),
	})

	paddle.SetPosition(vmath.V3F(1, 0, 0))
	w.Step(0.5)

	if !vmath.V3FApproxEqual(paddle.Velocity(), vmath.V3F(2, 0, 0), eps) {
		t.Errorf("Expected derived velocity (2,0,0), got %+v", paddle.Velocity())
	}

	w.Step(0.5)
	if paddle.Velocity() != (vmath.Vec3F{}) {
		t.Errorf("Expected zero velocity when pose is unchanged, got %+v", paddle.Velocity())
	}
}

// TestSphereBoxRotated verifies the normal is expressed in world space for rotated boxes
func TestSphereBoxRotated(t *testing.T) {
	n, depth, hit := SphereBox(vmath.V3F(0.4, 0, 0), 0.2, vmath.Vec3F{}, math.Pi/2, vmath.V3F(1, 0.25, 0.5))
	if !hit {
		t.Fatal("Expected contact")
	}
	if !vmath.V3FApproxEqual(n, vmath.V3F(1, 0, 0), 1e-9) {
		t.Errorf("Expected normal (1,0,0), got %+v", n)
	}
	if !vmath.ApproxEqual(depth, 0.05, 1e-9) {
		t.Errorf("Expected depth 0.05, got %f", depth)
	}

	if _, _, hit := SphereBox(vmath.V3F(3, 0, 0), 0.2, vmath.Vec3F{}, 0, vmath.V3F(1, 0.25, 0.5)); hit {
		t.Error("Expected no contact for distant sphere")
	}
}

// TestSphereBoxInside verifies a center inside the box is pushed out along the shallow axis
func TestSphereBoxInside(t *testing.T) {
	n, depth, hit := SphereBox(vmath.V3F(0.2, 0.2, 0), 0.3, vmath.Vec3F{}, 0, vmath.V3F(1, 0.25, 0.5))
	if !hit {
		t.Fatal("Expected contact")
	}
	if !vmath.V3FApproxEqual(n, vmath.V3F(0, 1, 0), eps) {
		t.Errorf("Expected normal (0,1,0), got %+v", n)
	}
	if !vmath.ApproxEqual(depth, 0.35, eps) {
		t.Errorf("Expected depth 0.35, got %f", depth)
	}
}

// TestBoxContactBothHandlers verifies both bodies receive mirrored events
func TestBoxContactBothHandlers(t *testing.T) {
	w := NewWorld(noGravity())
	boxRec := &recorder{}
	ballRec := &recorder{}

	mustAdd(t, w, engine.BodySpec{
		Kind:        engine.BodyStatic,
		Shape:       engine.ShapeBox,
		HalfExtents: vmath.V3F(1, 0.25, 0.5),
		Handler:     boxRec,
	})
	spec := ballSpec(vmath.V3F(0, 0.6, 0), vmath.V3F(0, -6, 0))
	spec.Handler = ballRec
	mustAdd(t, w, spec)

	w.Step(0.01)

	if len(boxRec.events) != 1 || len(ballRec.events) != 1 {
		t.Fatalf("Expected one event per body, got box=%d ball=%d", len(boxRec.events), len(ballRec.events))
	}
	if boxRec.events[0].ImpactVelocity != ballRec.events[0].ImpactVelocity {
		t.Error("Expected identical impact velocity on both sides")
	}
	if !vmath.ApproxEqual(ballRec.events[0].ImpactVelocity, 6, eps) {
		t.Errorf("Expected impact 6, got %f", ballRec.events[0].ImpactVelocity)
	}
}

// TestMaxSpeedClamp verifies restitution above one cannot exceed the speed cap
func TestMaxSpeedClamp(t *testing.T) {
	w := NewWorld(Config{Restitution: 1.07, MaxSpeed: 10, Substeps: 1})
	mustAdd(t, w, engine.BodySpec{Kind: engine.BodyStatic, Shape: engine.ShapePlane, Normal: vmath.V3F(0, 1, 0)})
	ball := mustAdd(t, w, ballSpec(vmath.V3F(0, 0.35, 0), vmath.V3F(0, -10, 0)))

	w.Step(0.01)

	if vmath.V3FMag(ball.Velocity()) > 10+eps {
		t.Errorf("Expected speed clamped to 10, got %f", vmath.V3FMag(ball.Velocity()))
	}
}

// TestAddBodyValidation verifies degenerate specs are rejected
func TestAddBodyValidation(t *testing.T) {
	tests := []struct {
		name string
		spec engine.BodySpec
	}{
		{"zero radius", engine.BodySpec{Shape: engine.ShapeSphere, Kind: engine.BodyStatic}},
		{"flat box", engine.BodySpec{Shape: engine.ShapeBox, Kind: engine.BodyStatic, HalfExtents: vmath.V3F(1, 0, 1)}},
		{"zero normal", engine.BodySpec{Shape: engine.ShapePlane, Kind: engine.BodyStatic}},
		{"massless dynamic", engine.BodySpec{Shape: engine.ShapeSphere, Kind: engine.BodyDynamic, Radius: 1}},
		{"dynamic box", engine.BodySpec{Shape: engine.ShapeBox, Kind: engine.BodyDynamic, Mass: 1, HalfExtents: vmath.V3F(1, 1, 1)}},
	}

	w := NewWorld(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := w.AddBody(tt.spec); !errors.Is(err, ErrInvalidBody) {
				t.Errorf("Expected ErrInvalidBody, got %v", err)
			}
		})
	}
	if len(w.Bodies()) != 0 {
		t.Errorf("Expected no bodies registered, got %d", len(w.Bodies()))
	}
}
