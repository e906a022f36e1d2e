// Package physics drives player movement, collision and raycasting
// against the voxel grid: AABB-vs-voxel collision resolved one point at a
// time, and a fixed-step ray march for mining/placement targeting.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/leterax/voxelcore/pkg/reactor"
)

// Movement and collision constants. Acceleration/StopRate/gravity are a
// fixed-point-feeling tick-rate model (not physically scaled units), so
// changing TickRate in pkg/config without retuning these would change
// how movement feels.
const (
	Acceleration    = 0.01
	StopRate        = Acceleration * 3.0
	AirControl      = 0.4
	WaterControl    = 0.7
	Gravity         = 0.0005
	UnderwaterDrag  = 0.0001
	UnderwaterDecay = 0.99
	UnderwaterSink  = 0.997
	MaxSpeed        = 0.5
	SpeedDecayFloor = 0.2

	ColWidth = 0.4
	ColDepth = 0.4

	StompForce  = 0.01
	DamageForce = 0.05
	DamageScale = 14.0

	StepPeriodTicks = 0x80
)

// ColPointTop and ColPointBottom are the fixed vertical offsets
// character.rs's COL_POINT_TOP/COL_POINT_BOTTOM use for the ceiling and
// floor collision checks (and, for the bottom point, for whether the
// player may jump at all).
var (
	ColPointTop    = mgl32.Vec3{0, 0.7, 0}
	ColPointBottom = mgl32.Vec3{0, -1.7, 0}
)

// BlockQuery answers the solidity and fluid questions physics needs,
// backed by pkg/world in the engine proper and by a fake grid in tests.
type BlockQuery interface {
	IsSolid(x, y, z int32) bool
	IsFluid(x, y, z int32) bool
}

// Player is one character's full physics state.
type Player struct {
	ID uuid.UUID

	Pos      mgl32.Vec3
	Velocity mgl32.Vec3

	// Pitch is clamped to [-90, 90]; Yaw wraps to [0, 360).
	Pitch, Yaw float32

	// Movement is the current input intent on the local XZ plane, scaled
	// roughly -1..1 per axis.
	Movement mgl32.Vec2

	NoClip  bool
	Health  int16
	tick    int64
	loaded  bool
}

// NewPlayer creates a player at pos, not yet marked as being in a loaded
// world (Tick is a no-op on an unloaded player, matching the freeze used
// while a spawn chunk is still generating).
func NewPlayer(pos mgl32.Vec3) *Player {
	return &Player{Pos: pos, Health: 100}
}

// SetLoaded marks whether the player's current chunk is resident; Tick
// freezes movement entirely while it's not.
func (p *Player) SetLoaded(loaded bool) { p.loaded = loaded }

func (p *Player) SetPitch(pitch float32) {
	p.Pitch = mgl32.Clamp(pitch, -90, 90)
}

func (p *Player) SetYaw(yaw float32) {
	yaw = float32(int(yaw*1000)%360000) / 1000
	if yaw < 0 {
		yaw += 360
	}
	p.Yaw = yaw
}

func solidAt(q BlockQuery, p mgl32.Vec3) bool {
	return q.IsSolid(int32(p.X()), int32(p.Y()), int32(p.Z()))
}

// isSolidPillar checks the three points character.rs's is_solid_pillar
// uses for each horizontal collision point, so a ledge at shin or head
// height still blocks sideways movement even when the point itself is
// clear: the point, 0.4 below it, and 0.8 above it.
func isSolidPillar(q BlockQuery, pos mgl32.Vec3) bool {
	return solidAt(q, pos) ||
		solidAt(q, pos.Add(mgl32.Vec3{0, -0.4, 0})) ||
		solidAt(q, pos.Add(mgl32.Vec3{0, 0.8, 0}))
}

func isUnderwater(q BlockQuery, pos mgl32.Vec3) bool {
	p := pos.Add(mgl32.Vec3{0, -0.8, 0})
	return q.IsFluid(int32(p.X()), int32(p.Y()), int32(p.Z()))
}

// Tick advances one fixed simulation step: input, gravity and drag shape
// velocity, then six collision points (two per axis) clamp it against
// solid ground, and the resulting impact force may emit CharacterStomp,
// CharacterDamage or CharacterDeath.
func (p *Player) Tick(q BlockQuery, r *reactor.Reactor) {
	p.tick++
	if p.NoClip {
		p.Pos = p.Pos.Add(p.Velocity)
		return
	}
	if !p.loaded {
		return
	}

	mayJump := solidAt(q, p.Pos.Add(ColPointBottom))
	underwater := isUnderwater(q, p.Pos)

	accel := float32(StopRate)
	if p.Movement.Len() > 0.01 {
		accel = Acceleration
	}
	if !mayJump {
		accel *= AirControl
	}
	if underwater {
		accel *= WaterControl
	}

	p.Velocity[0] = p.Velocity.X()*(1-accel) + p.Movement.X()*0.02*accel
	p.Velocity[2] = p.Velocity.Z()*(1-accel) + p.Movement.Y()*0.02*accel

	if underwater {
		p.Velocity[1] -= UnderwaterDrag
	} else {
		p.Velocity[1] -= Gravity
	}

	old := p.Velocity
	if underwater {
		p.Velocity[0] *= UnderwaterDecay
		p.Velocity[2] *= UnderwaterDecay
		p.Velocity[1] *= UnderwaterDecay
		p.Velocity[1] *= UnderwaterSink
	}

	p.resolveCollisions(q)

	force := old.Sub(p.Velocity).Len()
	if force > StompForce {
		r.Dispatch(reactor.CharacterStomp{ID: p.ID, Force: force})
	}
	if force > DamageForce {
		dmg := force * DamageScale
		amount := int16(dmg * dmg)
		p.Health -= amount
		if p.Health <= 0 {
			r.Dispatch(reactor.CharacterDeath{ID: p.ID})
		} else {
			r.Dispatch(reactor.CharacterDamage{ID: p.ID, Amount: amount})
		}
	}

	if speed := p.Velocity.Len(); speed > MaxSpeed {
		decay := mgl32.Clamp(speed-SpeedDecayFloor, 0.0001, 1.0)
		p.Velocity = p.Velocity.Mul(1 - decay)
	}

	if mayJump && p.Velocity.Len() > 0.01 && p.tick%StepPeriodTicks == 0 {
		r.Dispatch(reactor.CharacterStep{ID: p.ID})
	}

	p.Pos = p.Pos.Add(p.Velocity)
}

// resolveCollisions clamps velocity per axis against the six points
// character.rs tests: left/right for X, bottom/top for Y, front/back for
// Z. The horizontal four are full-width/depth pillar checks (COL_WIDTH,
// COL_DEPTH at y=-1.2); bottom and top are single points at y=-1.7/+0.7.
func (p *Player) resolveCollisions(q BlockQuery) {
	if p.Velocity.X() < 0 && isSolidPillar(q, p.Pos.Add(mgl32.Vec3{-ColWidth, -1.2, 0})) {
		p.Velocity[0] = 0
	}
	if p.Velocity.X() > 0 && isSolidPillar(q, p.Pos.Add(mgl32.Vec3{ColWidth, -1.2, 0})) {
		p.Velocity[0] = 0
	}
	if p.Velocity.Z() < 0 && isSolidPillar(q, p.Pos.Add(mgl32.Vec3{0, -1.2, -ColDepth})) {
		p.Velocity[2] = 0
	}
	if p.Velocity.Z() > 0 && isSolidPillar(q, p.Pos.Add(mgl32.Vec3{0, -1.2, ColDepth})) {
		p.Velocity[2] = 0
	}
	if p.Velocity.Y() < 0 && solidAt(q, p.Pos.Add(ColPointBottom)) {
		p.Velocity[1] = 0
	}
	if p.Velocity.Y() > 0 && solidAt(q, p.Pos.Add(ColPointTop)) {
		p.Velocity[1] = 0
	}
}
