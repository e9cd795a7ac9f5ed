package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickthruster/common"
)

// BodyParams are the per-tick force and damping constants.
type BodyParams struct {
	Torque           float64
	Thrust           float64
	RotationFriction float64
	Friction         float64
}

// Thrusters is the held-key state that drives a PhysicsBody for one tick.
type Thrusters struct {
	Left    bool
	Right   bool
	Reverse bool
}

// PhysicsBody is the player's stick. Angle is in degrees, measured clockwise
// from screen-up, and is never normalized.
type PhysicsBody struct {
	Pos        cp.Vector
	Vel        cp.Vector
	Angle      float64
	AngularVel float64

	Params BodyParams
}

func NewPhysicsBody(params BodyParams) *PhysicsBody {
	return &PhysicsBody{Params: params}
}

// Reset puts the body at rest at pos, pointing up.
func (b *PhysicsBody) Reset(pos cp.Vector) {
	b.Pos = pos
	b.Vel = cp.Vector{}
	b.Angle = 0
	b.AngularVel = 0
}

// Update advances the body one tick: forces, damping, Euler integration and
// clamping to [0,width]x[0,height]. Clamping leaves velocity untouched.
func (b *PhysicsBody) Update(in Thrusters, width, height float64) {
	b.applyInput(in)
	b.damp()
	b.integrate()
	b.clamp(width, height)
}

func (b *PhysicsBody) applyInput(in Thrusters) {
	if in.Left {
		b.AngularVel -= b.Params.Torque
	}
	if in.Right {
		b.AngularVel += b.Params.Torque
	}

	heading := b.Heading()
	if in.Left && in.Right {
		b.Vel = b.Vel.Add(heading.Mult(b.Params.Thrust))
	}
	if in.Reverse {
		b.Vel = b.Vel.Sub(heading.Mult(b.Params.Thrust))
	}
}

func (b *PhysicsBody) damp() {
	b.AngularVel *= b.Params.RotationFriction
	b.Vel = b.Vel.Mult(b.Params.Friction)
}

func (b *PhysicsBody) integrate() {
	b.Angle += b.AngularVel
	b.Pos = b.Pos.Add(b.Vel)
}

func (b *PhysicsBody) clamp(width, height float64) {
	b.Pos.X = common.Clamp(b.Pos.X, 0, width)
	b.Pos.Y = common.Clamp(b.Pos.Y, 0, height)
}

// Heading is the unit thrust direction, (sin a, -cos a) in screen space.
func (b *PhysicsBody) Heading() cp.Vector {
	rad := common.Radians(b.Angle)
	return cp.Vector{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// Orientation is the unit vector along the drawn stick, (cos a, sin a).
// It is a quarter turn off Heading; the arrow is drawn along it.
func (b *PhysicsBody) Orientation() cp.Vector {
	return cp.ForAngle(common.Radians(b.Angle))
}

// Endpoints returns the stick tips at pos ± halfLength·Orientation.
func (b *PhysicsBody) Endpoints(halfLength float64) (cp.Vector, cp.Vector) {
	off := b.Orientation().Mult(halfLength)
	return b.Pos.Add(off), b.Pos.Sub(off)
}
