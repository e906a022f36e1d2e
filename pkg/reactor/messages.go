package reactor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/leterax/voxelcore/pkg/voxel"
)

// Frame lifecycle.

type GameTick struct{ Tick int64 }
type DrawFrame struct{ Tick int64 }
type FinishedFrame struct{ Tick int64 }
type GameQuit struct{ Reason string }

// Character state and events, keyed by a stable UUID so a handler can
// track one character across frames without holding a pointer into the
// physics package's internal slice.

type CharacterPosRotVel struct {
	ID       uuid.UUID
	Pos      mgl32.Vec3
	Rot      mgl32.Vec2
	Velocity mgl32.Vec3
}

type CharacterJump struct{ ID uuid.UUID }
type CharacterStomp struct {
	ID    uuid.UUID
	Force float32
}
type CharacterStep struct{ ID uuid.UUID }
type CharacterShoot struct {
	ID  uuid.UUID
	Dir mgl32.Vec3
}
type CharacterDamage struct {
	ID     uuid.UUID
	Amount int16
}
type CharacterDeath struct{ ID uuid.UUID }

// World mutation events.

type BlockMine struct {
	Pos     [3]int32
	Block   voxel.BlockID
	Health  uint16
	Max     uint16
}
type BlockBreak struct {
	Pos   [3]int32
	Block voxel.BlockID
}
type BlockPlace struct {
	Pos   [3]int32
	Block voxel.BlockID
}

// Player input intents, separate from the Character* events above since
// a player's intent (what the input device asked for) and a character's
// outcome (what physics actually did) can diverge, e.g. a blocked jump.

type PlayerMove struct {
	ID       uuid.UUID
	Movement mgl32.Vec2
}
type PlayerFly struct {
	ID      uuid.UUID
	Enabled bool
}
type PlayerTurn struct {
	ID    uuid.UUID
	Delta mgl32.Vec2
}
type PlayerBlockMine struct {
	ID  uuid.UUID
	Pos [3]int32
}
type PlayerBlockPlace struct {
	ID    uuid.UUID
	Pos   [3]int32
	Block voxel.BlockID
}
type PlayerSwitchSelection struct {
	ID   uuid.UUID
	Slot int
}
type PlayerStrike struct{ ID uuid.UUID }

// World/ambient events.

type Explosion struct {
	Center mgl32.Vec3
	Radius float32
}
type WorldgenSpawnMob struct {
	Kind string
	Pos  mgl32.Vec3
}
type SfxPlay struct {
	Name string
	Pos  mgl32.Vec3
}
