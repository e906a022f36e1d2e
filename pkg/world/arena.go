package world

import (
	"github.com/brentp/intintmap"

	"github.com/leterax/voxelcore/pkg/voxel"
)

// chunkArena stores chunk values in a flat slice and indexes them by
// packed ChunkCoord via an intintmap, avoiding a Go map[int64]*T's per-key
// bucket overhead for the hot path (every mesh/light/fluid request looks
// a coordinate up). Freed slots are recycled through a free list rather
// than shrinking the slice, since chunks churn in and out at the render
// distance boundary constantly.
type chunkArena[T any] struct {
	index *intintmap.Map
	slots []*T
	free  []int32
}

func newChunkArena[T any]() *chunkArena[T] {
	return &chunkArena[T]{index: intintmap.New(1024, 0.75)}
}

func (a *chunkArena[T]) Get(c voxel.ChunkCoord) (*T, bool) {
	idx, ok := a.index.Get(c.Pack())
	if !ok {
		return nil, false
	}
	return a.slots[idx], true
}

func (a *chunkArena[T]) Put(c voxel.ChunkCoord, v *T) {
	key := c.Pack()
	if idx, ok := a.index.Get(key); ok {
		a.slots[idx] = v
		return
	}
	var idx int64
	if n := len(a.free); n > 0 {
		idx = int64(a.free[n-1])
		a.free = a.free[:n-1]
		a.slots[idx] = v
	} else {
		idx = int64(len(a.slots))
		a.slots = append(a.slots, v)
	}
	a.index.Put(key, idx)
}

func (a *chunkArena[T]) Delete(c voxel.ChunkCoord) {
	key := c.Pack()
	idx, ok := a.index.Get(key)
	if !ok {
		return
	}
	a.slots[idx] = nil
	a.free = append(a.free, int32(idx))
	a.index.Del(key)
}

func (a *chunkArena[T]) Len() int {
	return a.index.Size()
}

// Range visits resident (coord, value) pairs in index order, stopping
// early if fn returns false. fn must not mutate the arena (Put/Delete)
// while ranging.
func (a *chunkArena[T]) Range(fn func(voxel.ChunkCoord, *T) bool) {
	for _, key := range a.index.Keys() {
		idx, ok := a.index.Get(key)
		if !ok {
			continue
		}
		v := a.slots[idx]
		if v == nil {
			continue
		}
		if !fn(voxel.UnpackChunkCoord(key), v) {
			return
		}
	}
}
