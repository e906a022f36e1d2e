package world

import "github.com/leterax/voxelcore/pkg/voxel"

// coordSet is a deduplicating set of chunk coordinates; a coordinate
// already queued for a given kind of work is never queued twice, no
// matter how many times something asks for it before the pass that
// drains the set runs.
type coordSet map[voxel.ChunkCoord]struct{}

func (s coordSet) insert(c voxel.ChunkCoord) {
	s[c] = struct{}{}
}

func (s coordSet) drain() []voxel.ChunkCoord {
	if len(s) == 0 {
		return nil
	}
	out := make([]voxel.ChunkCoord, 0, len(s))
	for c := range s {
		out = append(out, c)
		delete(s, c)
	}
	return out
}

// RequestQueue collects the five kinds of chunk work the rest of the
// engine can ask for, deduplicated per kind so a chunk touched by several
// neighbors in one tick is only (re)built once.
type RequestQueue struct {
	mesh         coordSet
	block        coordSet
	simpleLight  coordSet
	complexLight coordSet
	fluid        coordSet
}

// NewRequestQueue creates an empty queue.
func NewRequestQueue() *RequestQueue {
	return &RequestQueue{
		mesh:         make(coordSet),
		block:        make(coordSet),
		simpleLight:  make(coordSet),
		complexLight: make(coordSet),
		fluid:        make(coordSet),
	}
}

func (q *RequestQueue) RequestMesh(c voxel.ChunkCoord)         { q.mesh.insert(c) }
func (q *RequestQueue) RequestBlock(c voxel.ChunkCoord)        { q.block.insert(c) }
func (q *RequestQueue) RequestSimpleLight(c voxel.ChunkCoord)  { q.simpleLight.insert(c) }
func (q *RequestQueue) RequestComplexLight(c voxel.ChunkCoord) { q.complexLight.insert(c) }
func (q *RequestQueue) RequestFluid(c voxel.ChunkCoord)        { q.fluid.insert(c) }

// DrainMesh, DrainBlock, DrainSimpleLight, DrainComplexLight and
// DrainFluid each return and clear the coordinates queued for that kind
// of work since the last drain. Order is unspecified.
func (q *RequestQueue) DrainMesh() []voxel.ChunkCoord         { return q.mesh.drain() }
func (q *RequestQueue) DrainBlock() []voxel.ChunkCoord        { return q.block.drain() }
func (q *RequestQueue) DrainSimpleLight() []voxel.ChunkCoord  { return q.simpleLight.drain() }
func (q *RequestQueue) DrainComplexLight() []voxel.ChunkCoord { return q.complexLight.drain() }
func (q *RequestQueue) DrainFluid() []voxel.ChunkCoord        { return q.fluid.drain() }

func (q *RequestQueue) Len() int {
	return len(q.mesh) + len(q.block) + len(q.simpleLight) + len(q.complexLight) + len(q.fluid)
}
