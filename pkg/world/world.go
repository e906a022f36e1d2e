package world

import (
	"errors"

	"github.com/leterax/voxelcore/pkg/voxel"
)

// ErrChunkNotLoaded is returned by the Require* accessors when a single
// chunk (not a whole neighborhood) isn't resident. GetTri* report
// missing neighbors via their ok bool instead, since a caller there
// typically wants the partial result (to see which neighbors are still
// missing), not an error.
var ErrChunkNotLoaded = errors.New("world: chunk not loaded")

// World is the resident chunk index: four independently-populated arenas
// (block, fluid, simple light, complex light) plus the request queue that
// tracks what's missing. A coordinate can be present in one arena and
// absent from another, e.g. a block chunk generated this tick has no
// light data yet until the light engine catches up.
type World struct {
	Types *voxel.BlockTypeTable

	blocks       *chunkArena[voxel.BlockChunk]
	fluids       *chunkArena[voxel.FluidChunk]
	simpleLight  *chunkArena[voxel.LightChunk]
	complexLight *chunkArena[voxel.LightChunk]

	Queue *RequestQueue
}

// New creates an empty world using the given block type table.
func New(types *voxel.BlockTypeTable) *World {
	return &World{
		Types:        types,
		blocks:       newChunkArena[voxel.BlockChunk](),
		fluids:       newChunkArena[voxel.FluidChunk](),
		simpleLight:  newChunkArena[voxel.LightChunk](),
		complexLight: newChunkArena[voxel.LightChunk](),
		Queue:        NewRequestQueue(),
	}
}

func (w *World) Block(c voxel.ChunkCoord) (*voxel.BlockChunk, bool)  { return w.blocks.Get(c) }
func (w *World) Fluid(c voxel.ChunkCoord) (*voxel.FluidChunk, bool)  { return w.fluids.Get(c) }
func (w *World) SimpleLight(c voxel.ChunkCoord) (*voxel.LightChunk, bool) {
	return w.simpleLight.Get(c)
}
func (w *World) ComplexLight(c voxel.ChunkCoord) (*voxel.LightChunk, bool) {
	return w.complexLight.Get(c)
}

// RequireBlock returns the resident chunk at c, or ErrChunkNotLoaded if
// it isn't there. It does not queue a load request itself (unlike
// GetTriBlocks) — callers that only need one chunk, not a neighborhood,
// are expected to have requested it some other way already.
func (w *World) RequireBlock(c voxel.ChunkCoord) (*voxel.BlockChunk, error) {
	chunk, ok := w.Block(c)
	if !ok {
		return nil, ErrChunkNotLoaded
	}
	return chunk, nil
}

func (w *World) PutBlock(c *voxel.BlockChunk) { w.blocks.Put(c.Coord, c) }
func (w *World) PutFluid(c *voxel.FluidChunk) { w.fluids.Put(c.Coord, c) }
func (w *World) PutSimpleLight(c *voxel.LightChunk) { w.simpleLight.Put(c.Coord, c) }
func (w *World) PutComplexLight(c *voxel.LightChunk) { w.complexLight.Put(c.Coord, c) }

func (w *World) RemoveBlock(c voxel.ChunkCoord)        { w.blocks.Delete(c) }
func (w *World) RemoveFluid(c voxel.ChunkCoord)        { w.fluids.Delete(c) }
func (w *World) RemoveSimpleLight(c voxel.ChunkCoord)  { w.simpleLight.Delete(c) }
func (w *World) RemoveComplexLight(c voxel.ChunkCoord) { w.complexLight.Delete(c) }

// neighborOffsets is the 27-cell 3x3x3 neighborhood in a fixed,
// deterministic order: z outermost, then y, then x, matching the
// flattened index a caller can use to address a [27]T array (index =
// (dz+1)*9 + (dy+1)*3 + (dx+1)).
var neighborOffsets = func() [27][3]int32 {
	var out [27][3]int32
	i := 0
	for dz := int32(-1); dz <= 1; dz++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dx := int32(-1); dx <= 1; dx++ {
				out[i] = [3]int32{dx, dy, dz}
				i++
			}
		}
	}
	return out
}()

// GetTriBlocks collects the 27 block chunks surrounding and including c.
// Any coordinate not currently resident is both recorded as nil in the
// result and queued via Queue.RequestBlock so a future tick can fill it
// in. ok is false if any neighbor was missing.
func (w *World) GetTriBlocks(c voxel.ChunkCoord) (tri [27]*voxel.BlockChunk, ok bool) {
	ok = true
	for i, off := range neighborOffsets {
		nc := c.Add(off[0], off[1], off[2])
		chunk, present := w.blocks.Get(nc)
		if !present {
			ok = false
			w.Queue.RequestBlock(nc)
			continue
		}
		tri[i] = chunk
	}
	return
}

// GetTriFluids is GetTriBlocks's fluid-chunk counterpart.
func (w *World) GetTriFluids(c voxel.ChunkCoord) (tri [27]*voxel.FluidChunk, ok bool) {
	ok = true
	for i, off := range neighborOffsets {
		nc := c.Add(off[0], off[1], off[2])
		chunk, present := w.fluids.Get(nc)
		if !present {
			ok = false
			w.Queue.RequestFluid(nc)
			continue
		}
		tri[i] = chunk
	}
	return
}

// GetTriSimpleLight is GetTriBlocks's simple-light counterpart.
func (w *World) GetTriSimpleLight(c voxel.ChunkCoord) (tri [27]*voxel.LightChunk, ok bool) {
	ok = true
	for i, off := range neighborOffsets {
		nc := c.Add(off[0], off[1], off[2])
		chunk, present := w.simpleLight.Get(nc)
		if !present {
			ok = false
			w.Queue.RequestSimpleLight(nc)
			continue
		}
		tri[i] = chunk
	}
	return
}

// GetTriComplexLight is GetTriBlocks's complex-light counterpart.
func (w *World) GetTriComplexLight(c voxel.ChunkCoord) (tri [27]*voxel.LightChunk, ok bool) {
	ok = true
	for i, off := range neighborOffsets {
		nc := c.Add(off[0], off[1], off[2])
		chunk, present := w.complexLight.Get(nc)
		if !present {
			ok = false
			w.Queue.RequestComplexLight(nc)
			continue
		}
		tri[i] = chunk
	}
	return
}

// BlockChunkCount, FluidChunkCount, SimpleLightChunkCount and
// ComplexLightChunkCount report resident chunk counts per arena, used by
// diagnostics.
func (w *World) BlockChunkCount() int        { return w.blocks.Len() }
func (w *World) FluidChunkCount() int        { return w.fluids.Len() }
func (w *World) SimpleLightChunkCount() int  { return w.simpleLight.Len() }
func (w *World) ComplexLightChunkCount() int { return w.complexLight.Len() }
