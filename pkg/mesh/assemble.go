package mesh

import (
	"errors"

	"github.com/leterax/voxelcore/pkg/voxel"
)

// ErrIncompleteNeighborhood is returned by Assemble when any of the 27
// chunks in the supplied tri-neighborhoods is missing.
var ErrIncompleteNeighborhood = errors.New("mesh: incomplete neighbor chunk data")

// triIndex mirrors pkg/world.GetTriBlocks's flattened 3x3x3 order:
// (dz+1)*9 + (dy+1)*3 + (dx+1).
func triIndex(dx, dy, dz int) int {
	return (dz+1)*9 + (dy+1)*3 + (dx+1)
}

// Assemble builds an Input for the chunk at the neighborhoods' center from
// a full 27-chunk block and light neighborhood in pkg/world.GetTri* order.
// Per-vertex corner-light averaging (see mesh.go) reads one cell past a
// face at the chunk's own edges and corners too: a merged quad's corner
// sitting on a chunk edge needs the diagonal neighbor that shares it, not
// just the face neighbor. So every one of the 27 entries is required, not
// only the center and its six face neighbors.
func Assemble(types *voxel.BlockTypeTable, triBlocks [27]*voxel.BlockChunk, triLight [27]*voxel.LightChunk) (*Input, error) {
	for _, c := range triBlocks {
		if c == nil {
			return nil, ErrIncompleteNeighborhood
		}
	}
	for _, c := range triLight {
		if c == nil {
			return nil, ErrIncompleteNeighborhood
		}
	}

	in := &Input{Types: types}
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				i := triIndex(dx, dy, dz)
				fillNeighbor(in, [3]int{dx, dy, dz}, triBlocks[i], triLight[i])
			}
		}
	}
	return in, nil
}

// axisCell pairs a padded-space index with the local index, in the
// neighbor chunk it's read from, that supplies it.
type axisCell struct{ padded, local int }

// axisCells returns the padded/local index pairs one axis contributes for
// a neighbor offset by f (-1, 0, or 1) on that axis: f==0 is this axis's
// own full 0..ChunkSize-1 span (the neighbor is only offset on the other
// two axes, so this axis reads straight through); f==-1/+1 is the single
// apron cell, read from the far side of the chunk one over.
func axisCells(f int) []axisCell {
	const s = voxel.ChunkSize
	switch f {
	case -1:
		return []axisCell{{0, s - 1}}
	case 1:
		return []axisCell{{s + 1, 0}}
	default:
		cells := make([]axisCell, s)
		for i := 0; i < s; i++ {
			cells[i] = axisCell{i + 1, i}
		}
		return cells
	}
}

// fillNeighbor copies every padded cell the neighbor at offset off
// contributes: the chunk's own interior when off is the zero vector, a
// full 32x32 plane for a face neighbor, a 32-long line for an edge
// neighbor, or a single cell for a corner neighbor.
func fillNeighbor(in *Input, off [3]int, nb *voxel.BlockChunk, nl *voxel.LightChunk) {
	for _, x := range axisCells(off[0]) {
		for _, y := range axisCells(off[1]) {
			for _, z := range axisCells(off[2]) {
				in.Blocks[x.padded][y.padded][z.padded] = nb.Get(x.local, y.local, z.local)
				in.Light[x.padded][y.padded][z.padded] = nl.Get(x.local, y.local, z.local)
			}
		}
	}
}
