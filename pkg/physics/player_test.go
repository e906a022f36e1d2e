package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/voxelcore/pkg/reactor"
)

func TestNoClipPlayerIgnoresCollisionAndWorld(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{0, 10, 0})
	p.NoClip = true
	p.Velocity = mgl32.Vec3{0, -5, 0}
	p.Tick(gridQuery{}, reactor.New())

	if p.Pos.Y() != 5 {
		t.Fatalf("no-clip player.Y = %v, want 5", p.Pos.Y())
	}
}

func TestUnloadedPlayerFreezes(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{0, 10, 0})
	p.Velocity = mgl32.Vec3{1, 0, 0}
	// SetLoaded not called: loaded defaults to false.
	p.Tick(gridQuery{}, reactor.New())

	if p.Pos != (mgl32.Vec3{0, 10, 0}) {
		t.Fatalf("unloaded player moved: %v", p.Pos)
	}
}

func TestGravityPullsLoadedPlayerDown(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{0, 10, 0})
	p.SetLoaded(true)
	startY := p.Pos.Y()

	p.Tick(gridQuery{}, reactor.New())

	if p.Pos.Y() >= startY {
		t.Fatalf("player.Y = %v, should have dropped below %v", p.Pos.Y(), startY)
	}
}

func TestFloorStopsDownwardVelocity(t *testing.T) {
	q := gridQuery{}
	for x := int32(-2); x <= 2; x++ {
		for z := int32(-2); z <= 2; z++ {
			q[[3]int32{x, 0, z}] = true
		}
	}
	// Pos tracks the head, not the feet: COL_POINT_BOTTOM sits 1.7 below
	// it, so starting well above the floor and letting gravity do the
	// work exercises the real fall-and-land path rather than a
	// same-tick clamp.
	p := NewPlayer(mgl32.Vec3{0, 10, 0})
	p.SetLoaded(true)

	for i := 0; i < 2000; i++ {
		p.Tick(q, reactor.New())
	}

	if p.Pos.Y() < 1.6 {
		t.Fatalf("player fell through the floor: Y = %v", p.Pos.Y())
	}
	if p.Velocity.Y() != 0 {
		t.Fatalf("player should have come to rest on the floor, velocity.Y = %v", p.Velocity.Y())
	}
}

func TestOnGroundUsesFullAccelerationAirborneAppliesAirControl(t *testing.T) {
	ground := gridQuery{}
	for x := int32(-2); x <= 2; x++ {
		for z := int32(-2); z <= 2; z++ {
			ground[[3]int32{x, 0, z}] = true
		}
	}

	// Pos.Y() + ColPointBottom.Y() == 0.95, so COL_POINT_BOTTOM lands
	// inside the solid floor layer (mayJump is true) while the horizontal
	// pillar samples all sit above it.
	grounded := NewPlayer(mgl32.Vec3{0, 2.65, 0})
	grounded.SetLoaded(true)
	grounded.Movement = mgl32.Vec2{1, 0}
	grounded.Tick(ground, reactor.New())

	airborne := NewPlayer(mgl32.Vec3{0, 50, 0})
	airborne.SetLoaded(true)
	airborne.Movement = mgl32.Vec2{1, 0}
	airborne.Tick(gridQuery{}, reactor.New())

	if grounded.Velocity.X() <= airborne.Velocity.X() {
		t.Fatalf("grounded accel (velocity.X=%v) should exceed airborne AirControl-limited accel (velocity.X=%v)",
			grounded.Velocity.X(), airborne.Velocity.X())
	}
}

func TestCharacterStepDispatchesWhenOnGroundAndMoving(t *testing.T) {
	ground := gridQuery{}
	for x := int32(-2); x <= 2; x++ {
		for z := int32(-2); z <= 2; z++ {
			ground[[3]int32{x, 0, z}] = true
		}
	}
	p := NewPlayer(mgl32.Vec3{0, 2.65, 0})
	p.SetLoaded(true)
	p.Velocity = mgl32.Vec3{1, 0, 0}
	p.tick = StepPeriodTicks - 1

	r := reactor.New()
	steps := 0
	r.On(reactor.CharacterStep{}, func(msg any) { steps++ })

	p.Tick(ground, r)

	if steps != 1 {
		t.Fatalf("CharacterStep dispatched %d times on an on-ground, moving tick, want 1", steps)
	}
}

func TestCharacterStepNotDispatchedWhileAirborne(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{0, 50, 0})
	p.SetLoaded(true)
	p.Velocity = mgl32.Vec3{1, 0, 0}
	p.tick = StepPeriodTicks - 1

	r := reactor.New()
	steps := 0
	r.On(reactor.CharacterStep{}, func(msg any) { steps++ })

	p.Tick(gridQuery{}, r)

	if steps != 0 {
		t.Fatalf("CharacterStep dispatched %d times while airborne, want 0", steps)
	}
}

func TestSetYawWrapsAndSetPitchClamps(t *testing.T) {
	p := NewPlayer(mgl32.Vec3{})
	p.SetYaw(-10)
	if p.Yaw != 350 {
		t.Fatalf("SetYaw(-10) = %v, want 350", p.Yaw)
	}
	p.SetPitch(200)
	if p.Pitch != 90 {
		t.Fatalf("SetPitch(200) = %v, want clamped to 90", p.Pitch)
	}
}
