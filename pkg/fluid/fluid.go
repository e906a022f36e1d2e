// Package fluid simulates cellular fluid flow: a fluid cell holds a kind
// identifier (0 = no fluid, nonzero = which fluid), which spreads by
// copying itself into empty, non-solid neighbors each tick, with a
// chunk's tick skipped once its neighborhood stops producing changes.
package fluid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/leterax/voxelcore/pkg/voxel"
)

const padded = voxel.ChunkSize + 2

// Buffers holds the mutable padded block/fluid scratch a Tick call reads
// and writes. Index 1..ChunkSize along each axis is the chunk's own
// cells; 0 and padded-1 are read-only apron.
type Buffers struct {
	Blocks [padded][padded][padded]voxel.BlockID
	Fluid  [padded][padded][padded]byte
	Types  *voxel.BlockTypeTable
}

// Result reports what one Tick call did, so the caller can decide whether
// to stamp the chunk's lastUpdated or lastUpdateWithoutChange timestamp.
type Result struct {
	Changed bool
}

// Tick runs one simulation step over the chunk's own 32^3 cells (the
// one-cell apron is never written): first any fluid now overlapping a
// solid block is cleared, then fluid spreads into empty non-solid
// neighbors. The forward sweep (increasing index order) pushes into +X,
// +Z and -Y (downward); the reverse sweep (decreasing order) pushes only
// into -X and -Z. Neither sweep pushes into +Y, so fluid spreads sideways
// and down but never rises.
func Tick(b *Buffers) Result {
	before := hashFluid(b)

	removeBlocked(b)
	forwardSweep(b)
	reverseSweep(b)

	after := hashFluid(b)
	return Result{Changed: before != after}
}

func hashFluid(b *Buffers) uint64 {
	h := xxhash.New()
	for x := 1; x <= voxel.ChunkSize; x++ {
		for y := 1; y <= voxel.ChunkSize; y++ {
			h.Write(b.Fluid[x][y][1 : voxel.ChunkSize+1])
		}
	}
	return h.Sum64()
}

func removeBlocked(b *Buffers) {
	for x := 1; x <= voxel.ChunkSize; x++ {
		for y := 1; y <= voxel.ChunkSize; y++ {
			for z := 1; z <= voxel.ChunkSize; z++ {
				if b.Types.IsSolid(b.Blocks[x][y][z]) {
					b.Fluid[x][y][z] = 0
				}
			}
		}
	}
}

// flowInto spreads src's fluid kind into dst if dst is both non-solid and
// currently empty. Fluid kind is an identifier, not a decaying quantity —
// a cell either carries a kind or it doesn't — so flow is a flood fill
// into empty neighbors rather than a level that thins with distance.
func flowInto(b *Buffers, sx, sy, sz, dx, dy, dz int) {
	if dx < 1 || dx > voxel.ChunkSize || dy < 1 || dy > voxel.ChunkSize || dz < 1 || dz > voxel.ChunkSize {
		return
	}
	if b.Types.IsSolid(b.Blocks[dx][dy][dz]) {
		return
	}
	kind := b.Fluid[sx][sy][sz]
	if kind == 0 {
		return
	}
	if b.Fluid[dx][dy][dz] == 0 {
		b.Fluid[dx][dy][dz] = kind
	}
}

func forwardSweep(b *Buffers) {
	for x := 1; x <= voxel.ChunkSize; x++ {
		for y := 1; y <= voxel.ChunkSize; y++ {
			for z := 1; z <= voxel.ChunkSize; z++ {
				if b.Fluid[x][y][z] == 0 {
					continue
				}
				flowInto(b, x, y, z, x+1, y, z)
				flowInto(b, x, y, z, x, y, z+1)
				flowInto(b, x, y, z, x, y-1, z)
			}
		}
	}
}

func reverseSweep(b *Buffers) {
	for x := voxel.ChunkSize; x >= 1; x-- {
		for y := voxel.ChunkSize; y >= 1; y-- {
			for z := voxel.ChunkSize; z >= 1; z-- {
				if b.Fluid[x][y][z] == 0 {
					continue
				}
				flowInto(b, x, y, z, x-1, y, z)
				flowInto(b, x, y, z, x, y, z-1)
			}
		}
	}
}

// ShouldUpdate reports whether a chunk's fluid tick should run: it's
// woken only when its own last-change timestamp, or one of its five
// orthogonal neighbors' (excluding the one below — fluid never needs to
// react to something changing beneath it before its own next scheduled
// fall), is newer than the last tick that produced no change.
func ShouldUpdate(lastUpdateWithoutChange int64, self int64, north, south, east, west, up int64) bool {
	if self > lastUpdateWithoutChange {
		return true
	}
	for _, n := range []int64{north, south, east, west, up} {
		if n > lastUpdateWithoutChange {
			return true
		}
	}
	return false
}

// ShouldTickThisStep gates a chunk to run its fluid tick on only one of
// every 16 ticks, spread out by coordinate so a world's fluid chunks
// don't all tick on the same frame. step is the current tick modulo 16.
func ShouldTickThisStep(c voxel.ChunkCoord, step uint32) bool {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(c.Pack()))
	h := fnv1a.HashBytes32(key[:])
	return h&15 == step&15
}
