// Package worldgen fills freshly requested chunks with terrain. The
// engine core only depends on the Generator interface; NoiseGenerator is
// the one concrete implementation shipped here.
package worldgen

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/voxelcore/pkg/reactor"
	"github.com/leterax/voxelcore/pkg/voxel"
)

// Outline marks a point of interest a generator found while filling a
// chunk but didn't resolve into blocks itself — a candidate tree/structure
// site, left for whatever world-decoration pass (outside this module's
// scope) wants to consume it.
type Outline struct {
	Pos  [3]int32
	Kind string
}

// Generator produces a chunk's initial block and fluid data, plus any
// outlines it noticed along the way. Called once per chunk coordinate
// the first time it's requested; the result is then owned by the world
// index like any other chunk.
type Generator interface {
	Generate(coord voxel.ChunkCoord) (*voxel.BlockChunk, *voxel.FluidChunk, []Outline, error)
}

// NoiseGenerator is an octaved value-noise height field: a handful of
// hashed value-noise lattice samples summed at decreasing amplitude and
// increasing frequency, which is cheap enough to run per-column without
// a dedicated noise library and matches the shape (not the exact values)
// of the reference terrain generator.
type NoiseGenerator struct {
	Seed        int64
	BaseHeight  float64
	Amplitude   float64
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	Stone, Dirt, Grass, Water voxel.BlockID

	Reactor *reactor.Reactor
}

// NewNoiseGenerator creates a generator with the reference constants:
// base height 32, amplitude 32, four octaves of persistence 0.5 and
// lacunarity 2.0 over a 1/64-scaled lattice.
func NewNoiseGenerator(seed int64, stone, dirt, grass, water voxel.BlockID, r *reactor.Reactor) *NoiseGenerator {
	return &NoiseGenerator{
		Seed:        seed,
		BaseHeight:  32,
		Amplitude:   32,
		Scale:       1.0 / 64.0,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Stone:       stone,
		Dirt:        dirt,
		Grass:       grass,
		Water:       water,
		Reactor:     r,
	}
}

// HeightAt returns the terrain surface height at world-space column
// (wx, wz).
func (g *NoiseGenerator) HeightAt(wx, wz int32) float64 {
	amp := 1.0
	freq := g.Scale
	sum := 0.0
	norm := 0.0
	for o := 0; o < g.Octaves; o++ {
		sum += amp * valueNoise2D(g.Seed, float64(wx)*freq, float64(wz)*freq)
		norm += amp
		amp *= g.Persistence
		freq *= g.Lacunarity
	}
	if norm == 0 {
		return g.BaseHeight
	}
	return g.BaseHeight + (sum/norm)*g.Amplitude
}

const seaLevel = 30

// Generate fills one chunk by sampling the height field per column and
// stacking stone/dirt/grass down from it, pooling water up to sea level
// in anything still open. Grass-topped columns whose surface sits above
// sea level and whose (wx+wz)%17 is 0 are reported as "tree" outlines for
// a decoration pass to act on; Generate never places the tree itself.
func (g *NoiseGenerator) Generate(coord voxel.ChunkCoord) (*voxel.BlockChunk, *voxel.FluidChunk, []Outline, error) {
	now := int64(0)
	blocks := voxel.NewBlockChunk(coord, now)
	fluids := voxel.NewFluidChunk(coord, now)
	var outlines []Outline

	originY := coord.Y * voxel.ChunkSize
	for lx := 0; lx < voxel.ChunkSize; lx++ {
		wx := coord.X*voxel.ChunkSize + int32(lx)
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			wz := coord.Z*voxel.ChunkSize + int32(lz)
			height := int32(g.HeightAt(wx, wz))

			for ly := 0; ly < voxel.ChunkSize; ly++ {
				wy := originY + int32(ly)
				switch {
				case wy < height-4:
					blocks.Set(g.Stone, lx, ly, lz, now)
				case wy < height-1:
					blocks.Set(g.Dirt, lx, ly, lz, now)
				case wy < height:
					blocks.Set(g.Grass, lx, ly, lz, now)
					if height > seaLevel && (wx+wz)%17 == 0 {
						outlines = append(outlines, Outline{Pos: [3]int32{wx, wy + 1, wz}, Kind: "tree"})
					}
				case wy < seaLevel:
					fluids.Set(g.Water, lx, ly, lz, now)
				}
			}
		}
	}

	if g.Reactor != nil {
		g.maybeSpawnMob(coord)
	}
	return blocks, fluids, outlines, nil
}

// maybeSpawnMob emits a WorldgenSpawnMob event once per chunk generated,
// near the middle of its top surface, letting whatever subscribes to it
// (an entity system outside this module's scope) decide whether and what
// to actually spawn.
func (g *NoiseGenerator) maybeSpawnMob(coord voxel.ChunkCoord) {
	cx := coord.X*voxel.ChunkSize + voxel.ChunkSize/2
	cz := coord.Z*voxel.ChunkSize + voxel.ChunkSize/2
	height := g.HeightAt(cx, cz)
	g.Reactor.Dispatch(reactor.WorldgenSpawnMob{
		Kind: "wanderer",
		Pos:  mgl32.Vec3{float32(cx), float32(height) + 1, float32(cz)},
	})
}
