// Package light computes per-chunk sunlight: a simple pass usable the
// instant a chunk's own blocks are known, and a complex pass that blends
// across chunk boundaries once neighbors are available too.
package light

import "github.com/leterax/voxelcore/pkg/voxel"

const (
	maxLight = 15
)

// Blocks is the read-only view into block data the light engine needs: a
// solidity test, nothing else.
type Blocks interface {
	IsSolid(x, y, z int) bool
}

// Simple computes one chunk's light in isolation: seed full sunlight down
// from the top of the column, stopping (and zeroing the rest of the
// column) at the first solid cell, then blur the result and halve it at
// solid cells for a cheap ambient-occlusion approximation.
//
// This never looks at neighboring chunks, so it runs the instant a
// chunk's blocks exist; it assumes open sky above every column.
func Simple(out *voxel.LightChunk, blocks Blocks) {
	sunlight(out, blocks)
	blur(out, blocks)
	ambientOcclusion(out, blocks)
}

func sunlight(out *voxel.LightChunk, blocks Blocks) {
	for x := 0; x < voxel.ChunkSize; x++ {
		for z := 0; z < voxel.ChunkSize; z++ {
			level := uint8(maxLight)
			for y := voxel.ChunkSize - 1; y >= 0; y-- {
				if blocks.IsSolid(x, y, z) {
					level = 0
					out.Set(x, y, z, 0)
					continue
				}
				out.Set(x, y, z, level)
			}
		}
	}
}

// blur performs the three-axis decay-propagation pass in a fixed order
// (Z, then X, then Y) so each axis sees the previous axis's spread; doing
// all three in a different order produces a visibly different (and
// incorrect, compared to the reference) falloff shape.
func blur(out *voxel.LightChunk, blocks Blocks) {
	blurZ(out, blocks)
	blurX(out, blocks)
	blurY(out, blocks)
}

// blurZ, blurX and blurY each run two simultaneous sweeps along one
// axis — forward and reverse — each carrying a running "light so far" value that decays by
// one per step and is clamped up to whatever the cell already holds, so
// light spreads from bright cells into dim neighbors in both directions
// in a single pass.
func blurZ(out *voxel.LightChunk, blocks Blocks) {
	for x := 0; x < voxel.ChunkSize; x++ {
		for y := 0; y < voxel.ChunkSize; y++ {
			var fwd, rev uint8
			for z := 0; z < voxel.ChunkSize; z++ {
				rz := voxel.ChunkSize - 1 - z
				fwd = blurStep(out, blocks, x, y, z, fwd)
				rev = blurStep(out, blocks, x, y, rz, rev)
			}
		}
	}
}

func blurX(out *voxel.LightChunk, blocks Blocks) {
	for y := 0; y < voxel.ChunkSize; y++ {
		for z := 0; z < voxel.ChunkSize; z++ {
			var fwd, rev uint8
			for x := 0; x < voxel.ChunkSize; x++ {
				rx := voxel.ChunkSize - 1 - x
				fwd = blurStep(out, blocks, x, y, z, fwd)
				rev = blurStep(out, blocks, rx, y, z, rev)
			}
		}
	}
}

func blurY(out *voxel.LightChunk, blocks Blocks) {
	for x := 0; x < voxel.ChunkSize; x++ {
		for z := 0; z < voxel.ChunkSize; z++ {
			var fwd, rev uint8
			for y := 0; y < voxel.ChunkSize; y++ {
				ry := voxel.ChunkSize - 1 - y
				fwd = blurStep(out, blocks, x, y, z, fwd)
				rev = blurStep(out, blocks, x, ry, z, rev)
			}
		}
	}
}

// blurStep merges the running value into cell (x,y,z), returning the
// decayed carry for the next step. A solid cell takes the carry but
// passes none on, so light does not leak through walls.
func blurStep(out *voxel.LightChunk, blocks Blocks, x, y, z int, carry uint8) uint8 {
	cur := out.Get(x, y, z)
	if carry > cur {
		out.Set(x, y, z, carry)
		cur = carry
	}
	if cur == 0 || blocks.IsSolid(x, y, z) {
		return 0
	}
	return cur - 1
}

// ambientOcclusion halves light at solid cells, a cheap stand-in for
// proper occlusion that darkens block interiors without an extra
// propagation pass.
func ambientOcclusion(out *voxel.LightChunk, blocks Blocks) {
	for x := 0; x < voxel.ChunkSize; x++ {
		for y := 0; y < voxel.ChunkSize; y++ {
			for z := 0; z < voxel.ChunkSize; z++ {
				if blocks.IsSolid(x, y, z) {
					out.Set(x, y, z, out.Get(x, y, z)/2)
				}
			}
		}
	}
}

// neighborIndex indexes the 27-cell neighborhood the same way
// world.GetTriBlocks does: (dz+1)*9 + (dy+1)*3 + (dx+1).
func neighborIndex(dx, dy, dz int) int {
	return (dz+1)*9 + (dy+1)*3 + (dx+1)
}

// Complex computes a chunk's light with cross-chunk awareness: the
// column seed for the topmost layer comes from the chunk directly above
// rather than assuming open sky, and after the local blur each of the
// six face-adjacent neighbors' boundary light is blended in (one step
// dimmer than the neighbor's own value, never discarding a locally
// brighter result).
//
// tri is the 27-chunk neighborhood in world.GetTriBlocks order; a nil
// entry is treated as if that neighbor weren't resident (skipped).
func Complex(out *voxel.LightChunk, blocks Blocks, tri [27]*voxel.LightChunk) {
	sunlight(out, blocks)
	blur(out, blocks)
	ambientOcclusion(out, blocks)

	above := tri[neighborIndex(0, 1, 0)]
	if above != nil {
		// Re-seed every column from the above chunk's bottom layer in
		// place of the open-sky value, then blur again.
		for x := 0; x < voxel.ChunkSize; x++ {
			for z := 0; z < voxel.ChunkSize; z++ {
				level := above.Get(x, 0, z)
				for y := voxel.ChunkSize - 1; y >= 0; y-- {
					if blocks.IsSolid(x, y, z) {
						level = 0
					}
					out.Set(x, y, z, level)
				}
			}
		}
		blur(out, blocks)
		ambientOcclusion(out, blocks)
	}

	faces := [6][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	blended := false
	for _, f := range faces {
		n := tri[neighborIndex(f[0], f[1], f[2])]
		if n == nil {
			continue
		}
		blendFace(out, blocks, n, f[0], f[1], f[2])
		blended = true
	}
	// blendFace only raises the single outermost layer of cells on each
	// blended face; without a re-blur that brighter seed never reaches
	// the chunk interior, leaving a visible seam one cell in from the
	// boundary.
	if blended {
		blur(out, blocks)
		ambientOcclusion(out, blocks)
	}
}

// blendFace max-blends one face of out against the corresponding face of
// neighbor n offset by (dx,dy,dz), decaying the neighbor's value by one
// (floored at zero) before comparing.
func blendFace(out *voxel.LightChunk, blocks Blocks, n *voxel.LightChunk, dx, dy, dz int) {
	const s = voxel.ChunkSize
	for a := 0; a < s; a++ {
		for b := 0; b < s; b++ {
			var x, y, z, nx, ny, nz int
			switch {
			case dx != 0:
				if dx > 0 {
					x, nx = s-1, 0
				} else {
					x, nx = 0, s-1
				}
				y, ny = a, a
				z, nz = b, b
			case dy != 0:
				if dy > 0 {
					y, ny = s-1, 0
				} else {
					y, ny = 0, s-1
				}
				x, nx = a, a
				z, nz = b, b
			default:
				if dz > 0 {
					z, nz = s-1, 0
				} else {
					z, nz = 0, s-1
				}
				x, nx = a, a
				y, ny = b, b
			}
			if blocks.IsSolid(x, y, z) {
				continue
			}
			v := n.Get(nx, ny, nz)
			if v > 0 {
				v--
			}
			if v > out.Get(x, y, z) {
				out.Set(x, y, z, v)
			}
		}
	}
}
