// Package voxel implements the chunked block/fluid/light data model that
// backs the rest of the engine: fixed-size chunk storage, the process-wide
// block type table, and coordinate conversions between world space, chunk
// space, and chunk-local space.
package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Chunk edge length and the bit math used to convert between world and
// chunk-local coordinates. Kept as named constants (rather than inlined
// shifts) since both the mesher and the light/fluid engines depend on them
// matching exactly.
const (
	ChunkBits = 5
	ChunkSize = 1 << ChunkBits // 32
	ChunkMask = ChunkSize - 1  // 31
)

// ChunkCoord identifies a chunk in chunk space (not world/block space).
type ChunkCoord struct {
	X, Y, Z int32
}

// Add returns the coordinate offset by (dx, dy, dz).
func (c ChunkCoord) Add(dx, dy, dz int32) ChunkCoord {
	return ChunkCoord{c.X + dx, c.Y + dy, c.Z + dz}
}

// Pack folds the coordinate into a single int64 key, used by the world
// index's intintmap-backed chunk maps. Each axis gets 21 bits (signed,
// offset to unsigned), comfortably covering any world a render distance
// measured in chunks would reach.
func (c ChunkCoord) Pack() int64 {
	const bias = 1 << 20
	x := int64(c.X+bias) & 0x1FFFFF
	y := int64(c.Y+bias) & 0x1FFFFF
	z := int64(c.Z+bias) & 0x1FFFFF
	return (x << 42) | (y << 21) | z
}

// UnpackChunkCoord reverses ChunkCoord.Pack.
func UnpackChunkCoord(key int64) ChunkCoord {
	const bias = 1 << 20
	x := int32((key>>42)&0x1FFFFF) - bias
	y := int32((key>>21)&0x1FFFFF) - bias
	z := int32(key&0x1FFFFF) - bias
	return ChunkCoord{x, y, z}
}

// WorldToChunk splits a world-space cell into its containing chunk
// coordinate and the local (0..ChunkSize) coordinate within that chunk.
func WorldToChunk(wx, wy, wz int32) (coord ChunkCoord, lx, ly, lz int) {
	coord = ChunkCoord{wx >> ChunkBits, wy >> ChunkBits, wz >> ChunkBits}
	lx = int(wx & ChunkMask)
	ly = int(wy & ChunkMask)
	lz = int(wz & ChunkMask)
	return
}

// ChunkOrigin returns the world-space position of a chunk's (0,0,0) corner.
func ChunkOrigin(c ChunkCoord) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.X * ChunkSize),
		float32(c.Y * ChunkSize),
		float32(c.Z * ChunkSize),
	}
}

// localIndex converts local (0..32) coordinates to a flat array offset.
func localIndex(x, y, z int) int {
	return x*ChunkSize*ChunkSize + y*ChunkSize + z
}
