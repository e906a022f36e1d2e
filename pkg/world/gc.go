package world

import "github.com/leterax/voxelcore/pkg/voxel"

// gcBudget bounds how many chunks a single GC pass inspects, so a world
// with tens of thousands of resident chunks never stalls a tick doing a
// full sweep; eviction instead trickles out over many ticks.
const gcBudget = 512

// gcKind cycles GC through the four arenas one per call, rather than
// sweeping all of them every tick.
type gcKind int

const (
	gcBlocks gcKind = iota
	gcFluids
	gcSimpleLight
	gcComplexLight
	gcKindCount
)

// GC evicts chunks farther than 2*renderDistance (in chunks) from center,
// using a squared-distance test so it never takes a square root. Each
// call advances to the next arena in rotation and inspects at most
// gcBudget chunks from it, making repeated calls (once per tick, say)
// eventually cover every resident chunk without any single call doing
// unbounded work.
type GC struct {
	next gcKind
}

// NewGC creates a GC ready to run its first pass.
func NewGC() *GC { return &GC{} }

// Run performs one bounded eviction pass and returns the number of
// chunks it removed.
func (g *GC) Run(w *World, center voxel.ChunkCoord, renderDistance int32) int {
	maxD := 4 * renderDistance * renderDistance
	kind := g.next
	g.next = (g.next + 1) % gcKindCount

	switch kind {
	case gcBlocks:
		return sweep(w.blocks, center, maxD)
	case gcFluids:
		return sweep(w.fluids, center, maxD)
	case gcSimpleLight:
		return sweep(w.simpleLight, center, maxD)
	default:
		return sweep(w.complexLight, center, maxD)
	}
}

func sweep[T any](a *chunkArena[T], center voxel.ChunkCoord, maxD int32) int {
	var stale []voxel.ChunkCoord
	examined := 0
	a.Range(func(c voxel.ChunkCoord, _ *T) bool {
		examined++
		dx, dy, dz := c.X-center.X, c.Y-center.Y, c.Z-center.Z
		if dx*dx+dy*dy+dz*dz > maxD {
			stale = append(stale, c)
		}
		return examined < gcBudget
	})
	for _, c := range stale {
		a.Delete(c)
	}
	return len(stale)
}
