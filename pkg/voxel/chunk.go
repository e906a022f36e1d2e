package voxel

import "github.com/go-gl/mathgl/mgl32"

// grid is the common 32^3 byte storage shared by block, fluid, and light
// chunks. Bounds-checking is the caller's responsibility in hot paths (the
// mesher copies into a padded scratch buffer specifically so its inner
// loops never need to check); the box/sphere/pillar mutators below do
// their own clamping since they're not called per-cell in a hot loop.
type grid [ChunkSize * ChunkSize * ChunkSize]byte

func (g *grid) get(x, y, z int) byte {
	return g[localIndex(x, y, z)]
}

func (g *grid) set(x, y, z int, v byte) {
	g[localIndex(x, y, z)] = v
}

// BlockChunk is a 32x32x32 grid of block IDs (0 = air), timestamped on
// every mutation.
type BlockChunk struct {
	Coord       ChunkCoord
	data        grid
	lastUpdated int64
}

// NewBlockChunk creates an all-air chunk at coord.
func NewBlockChunk(coord ChunkCoord, now int64) *BlockChunk {
	return &BlockChunk{Coord: coord, lastUpdated: now}
}

// LastUpdated returns the monotonic tick/timestamp of the chunk's most
// recent mutation.
func (c *BlockChunk) LastUpdated() int64 { return c.lastUpdated }

// Get returns the block ID at local coordinates (0..32).
func (c *BlockChunk) Get(x, y, z int) BlockID { return c.data.get(x, y, z) }

// Set writes a single block and stamps lastUpdated.
func (c *BlockChunk) Set(block BlockID, x, y, z int, now int64) {
	c.data.set(x, y, z, block)
	c.lastUpdated = now
}

// SetBox fills an axis-aligned box [origin, origin+size) with block.
func (c *BlockChunk) SetBox(block BlockID, ox, oy, oz, sx, sy, sz int, now int64) {
	forEachInBox(ox, oy, oz, sx, sy, sz, func(x, y, z int) {
		c.data.set(x, y, z, block)
	})
	c.lastUpdated = now
}

// SetSphere fills a sphere of the given radius centered at (cx,cy,cz).
func (c *BlockChunk) SetSphere(block BlockID, cx, cy, cz, radius int, now int64) {
	forEachInSphere(cx, cy, cz, radius, func(x, y, z int) {
		c.data.set(x, y, z, block)
	})
	c.lastUpdated = now
}

// SetPillar fills a vertical column from y up to (exclusive) goalY.
func (c *BlockChunk) SetPillar(block BlockID, x, y, z, goalY int, now int64) {
	forEachInPillar(y, goalY, func(yy int) {
		c.data.set(x, yy, z, block)
	})
	c.lastUpdated = now
}

// FluidChunk is a 32x32x32 grid of fluid kinds (0 = none). It carries two
// timestamps: lastUpdated (last change) and lastUpdateWithoutChanges (last
// tick that ran but produced no change), used by the fluid engine to skip
// quiescent chunks.
type FluidChunk struct {
	Coord                   ChunkCoord
	data                    grid
	lastUpdated             int64
	lastUpdateWithoutChange int64
}

// NewFluidChunk creates an empty fluid chunk at coord.
func NewFluidChunk(coord ChunkCoord, now int64) *FluidChunk {
	return &FluidChunk{Coord: coord, lastUpdated: now, lastUpdateWithoutChange: now}
}

func (c *FluidChunk) LastUpdated() int64             { return c.lastUpdated }
func (c *FluidChunk) LastUpdateWithoutChange() int64 { return c.lastUpdateWithoutChange }
func (c *FluidChunk) MarkUpdated(now int64)          { c.lastUpdated = now }
func (c *FluidChunk) MarkQuiescent(now int64)        { c.lastUpdateWithoutChange = now }

// Get returns the fluid kind at local coordinates.
func (c *FluidChunk) Get(x, y, z int) byte { return c.data.get(x, y, z) }

// Set writes a single fluid cell and stamps lastUpdated.
func (c *FluidChunk) Set(fluid byte, x, y, z int, now int64) {
	c.data.set(x, y, z, fluid)
	c.lastUpdated = now
}

// SetBox fills an axis-aligned box with fluid.
func (c *FluidChunk) SetBox(fluid byte, ox, oy, oz, sx, sy, sz int, now int64) {
	forEachInBox(ox, oy, oz, sx, sy, sz, func(x, y, z int) {
		c.data.set(x, y, z, fluid)
	})
	c.lastUpdated = now
}

// SetPillar fills a vertical column with fluid.
func (c *FluidChunk) SetPillar(fluid byte, x, y, z, goalY int, now int64) {
	forEachInPillar(y, goalY, func(yy int) {
		c.data.set(x, yy, z, fluid)
	})
	c.lastUpdated = now
}

// RawData exposes the flat 32^3 byte buffer for bulk operations (hashing,
// blit into a padded scratch buffer). Callers must not retain the slice
// across a mutation.
func (c *FluidChunk) RawData() []byte { return c.data[:] }

// LightChunk is a 32x32x32 grid of 0-15 light intensities.
type LightChunk struct {
	Coord       ChunkCoord
	data        grid
	lastUpdated int64
}

// NewLightChunk creates a light chunk with all cells at full brightness.
func NewLightChunk(coord ChunkCoord, now int64) *LightChunk {
	c := &LightChunk{Coord: coord, lastUpdated: now}
	for i := range c.data {
		c.data[i] = 15
	}
	return c
}

func (c *LightChunk) LastUpdated() int64    { return c.lastUpdated }
func (c *LightChunk) Touch(now int64)       { c.lastUpdated = now }
func (c *LightChunk) Get(x, y, z int) uint8 { return c.data.get(x, y, z) }
func (c *LightChunk) Set(x, y, z int, v uint8) {
	c.data.set(x, y, z, v)
}

// RawData exposes the flat 32^3 byte buffer for bulk operations.
func (c *LightChunk) RawData() []byte { return c.data[:] }

// WorldOrigin returns the world-space position of this chunk's (0,0,0)
// corner.
func (c *BlockChunk) WorldOrigin() mgl32.Vec3 { return ChunkOrigin(c.Coord) }

func forEachInBox(ox, oy, oz, sx, sy, sz int, fn func(x, y, z int)) {
	for x := max(ox, 0); x < min(ox+sx, ChunkSize); x++ {
		for y := max(oy, 0); y < min(oy+sy, ChunkSize); y++ {
			for z := max(oz, 0); z < min(oz+sz, ChunkSize); z++ {
				fn(x, y, z)
			}
		}
	}
}

func forEachInSphere(cx, cy, cz, radius int, fn func(x, y, z int)) {
	r2 := radius * radius
	for x := max(cx-radius, 0); x <= min(cx+radius, ChunkSize-1); x++ {
		for y := max(cy-radius, 0); y <= min(cy+radius, ChunkSize-1); y++ {
			for z := max(cz-radius, 0); z <= min(cz+radius, ChunkSize-1); z++ {
				dx, dy, dz := x-cx, y-cy, z-cz
				if dx*dx+dy*dy+dz*dz <= r2 {
					fn(x, y, z)
				}
			}
		}
	}
}

func forEachInPillar(y, goalY int, fn func(y int)) {
	start := max(y, 0)
	end := min(goalY, ChunkSize)
	for yy := start; yy < end; yy++ {
		fn(yy)
	}
}
