package world

import (
	"testing"

	"github.com/leterax/voxelcore/pkg/voxel"
)

func TestPutAndGetBlockChunk(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	coord := voxel.ChunkCoord{X: 1, Y: -2, Z: 3}
	c := voxel.NewBlockChunk(coord, 0)
	w.PutBlock(c)

	got, ok := w.Block(coord)
	if !ok || got != c {
		t.Fatalf("Block(%v) = (%v, %v), want (%p, true)", coord, got, ok, c)
	}
	if _, ok := w.Block(voxel.ChunkCoord{X: 99}); ok {
		t.Fatalf("expected a miss for an absent coordinate")
	}
}

func TestRemoveBlockChunk(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	coord := voxel.ChunkCoord{}
	w.PutBlock(voxel.NewBlockChunk(coord, 0))
	w.RemoveBlock(coord)
	if _, ok := w.Block(coord); ok {
		t.Fatalf("chunk still resident after RemoveBlock")
	}
	if w.BlockChunkCount() != 0 {
		t.Fatalf("BlockChunkCount = %d, want 0", w.BlockChunkCount())
	}
}

func TestGetTriBlocksQueuesMissingNeighbors(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	center := voxel.ChunkCoord{}
	w.PutBlock(voxel.NewBlockChunk(center, 0))

	_, ok := w.GetTriBlocks(center)
	if ok {
		t.Fatalf("expected ok=false since only the center chunk is resident")
	}
	queued := w.Queue.DrainBlock()
	if len(queued) != 26 {
		t.Fatalf("queued %d missing neighbors, want 26", len(queued))
	}
}

func TestGetTriBlocksCompleteNeighborhood(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	center := voxel.ChunkCoord{}
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				c := center.Add(dx, dy, dz)
				w.PutBlock(voxel.NewBlockChunk(c, 0))
			}
		}
	}
	tri, ok := w.GetTriBlocks(center)
	if !ok {
		t.Fatalf("expected ok=true with a full 27-chunk neighborhood resident")
	}
	for i, c := range tri {
		if c == nil {
			t.Fatalf("tri[%d] is nil in a complete neighborhood", i)
		}
	}
}

func TestRequireBlockReportsErrChunkNotLoaded(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	if _, err := w.RequireBlock(voxel.ChunkCoord{X: 1}); err != ErrChunkNotLoaded {
		t.Fatalf("err = %v, want ErrChunkNotLoaded", err)
	}
	coord := voxel.ChunkCoord{}
	c := voxel.NewBlockChunk(coord, 0)
	w.PutBlock(c)
	got, err := w.RequireBlock(coord)
	if err != nil || got != c {
		t.Fatalf("RequireBlock(%v) = (%v, %v), want (%p, nil)", coord, got, err, c)
	}
}

func TestGetTriComplexLightQueuesMissingNeighbors(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	center := voxel.ChunkCoord{}
	w.PutComplexLight(voxel.NewLightChunk(center, 0))

	_, ok := w.GetTriComplexLight(center)
	if ok {
		t.Fatalf("expected ok=false since only the center chunk is resident")
	}
	if len(w.Queue.DrainComplexLight()) != 26 {
		t.Fatalf("expected 26 missing neighbors queued")
	}
}

func TestGCEvictsChunksBeyondRenderDistance(t *testing.T) {
	w := New(voxel.NewBlockTypeTable())
	near := voxel.ChunkCoord{X: 1}
	far := voxel.ChunkCoord{X: 100}
	w.PutBlock(voxel.NewBlockChunk(near, 0))
	w.PutBlock(voxel.NewBlockChunk(far, 0))

	gc := NewGC()
	// One Run call advances one arena in rotation; blocks is first.
	gc.Run(w, voxel.ChunkCoord{}, 8)

	if _, ok := w.Block(far); ok {
		t.Fatalf("far chunk should have been evicted")
	}
	if _, ok := w.Block(near); !ok {
		t.Fatalf("near chunk should have survived GC")
	}
}

func TestRequestQueueDedupesAndDrains(t *testing.T) {
	q := NewRequestQueue()
	c := voxel.ChunkCoord{X: 5}
	q.RequestMesh(c)
	q.RequestMesh(c)
	q.RequestMesh(voxel.ChunkCoord{X: 6})

	drained := q.DrainMesh()
	if len(drained) != 2 {
		t.Fatalf("drained %d coords, want 2 deduped entries", len(drained))
	}
	if len(q.DrainMesh()) != 0 {
		t.Fatalf("second drain should be empty")
	}
}
