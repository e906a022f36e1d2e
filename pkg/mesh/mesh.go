// Package mesh turns a chunk's block and light data into a GPU-ready
// vertex buffer via greedy meshing: same-block, same-light runs of visible
// faces are merged into single quads rather than emitted one-per-cell.
package mesh

import (
	"github.com/leterax/voxelcore/pkg/voxel"
)

// padded is the side length of the scratch buffers the mesher reads from:
// one cell of apron on each side of the 32^3 chunk, so visibility and
// light checks across a chunk boundary never need a neighbor-chunk lookup
// of their own.
const padded = voxel.ChunkSize + 2

// Input is the padded neighborhood a chunk needs to mesh itself. Index 0
// and padded-1 along each axis are the one-cell apron copied in from the
// 26 neighboring chunks (Assemble requires every one of them to be
// resident); indices 1..ChunkSize hold the chunk's own data.
type Input struct {
	Blocks [padded][padded][padded]voxel.BlockID
	Light  [padded][padded][padded]uint8
	Types  *voxel.BlockTypeTable
}

// BlockVertex is the 5-byte packed vertex the renderer uploads directly:
// local position (one byte per axis, 0..32), the block's texture atlas
// index for this face, and a side+light byte (side in the low nibble,
// 0-15 light in the high nibble).
type BlockVertex struct {
	X, Y, Z      uint8
	TexIndex     uint8
	SideAndLight uint8
}

// QuadIndices is the index pattern every quad uses (two CCW triangles over
// four vertices in corner order 0,1,2,3). Meshes emit vertices only; a
// renderer reuses one static index buffer across every quad in every
// chunk by repeating this pattern at each 4-vertex offset.
var QuadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// Result is one chunk's worth of mesh output, vertices grouped by side so
// a renderer can redraw a single face direction (e.g. after a block
// placement only changes what's visible from above) without rebuilding
// the whole chunk.
type Result struct {
	Vertices        []BlockVertex
	SideStart       [voxel.NumSides]int
	SideSquareCount [voxel.NumSides]int
}

func packSideLight(side voxel.Side, light uint8) uint8 {
	return uint8(side) | (light << 4)
}

// neighborOffset is the padded-space step to the cell a face of this side
// looks into, in the fixed order SideFront..SideRight.
var neighborOffset = [voxel.NumSides][3]int{
	{0, 0, -1}, // Front
	{0, 0, 1},  // Back
	{0, 1, 0},  // Top
	{0, -1, 0}, // Bottom
	{-1, 0, 0}, // Left
	{1, 0, 0},  // Right
}

// Build runs greedy meshing over all six face directions and returns the
// merged quads as packed vertices.
func Build(in *Input) *Result {
	res := &Result{}
	for s := voxel.Side(0); s < voxel.NumSides; s++ {
		res.SideStart[s] = len(res.Vertices)
		quads := meshSide(in, s, &res.Vertices)
		res.SideSquareCount[s] = quads
	}
	return res
}

// axisFor returns the (u, v, w) axis permutation used to sweep a given
// side: w is the axis the face stack marches along, u/v span the 2D slice
// plane being greedily merged.
func axisFor(s voxel.Side) (u, v, w int) {
	switch s {
	case voxel.SideFront, voxel.SideBack:
		return 0, 1, 2
	case voxel.SideLeft, voxel.SideRight:
		return 2, 1, 0
	default: // Top, Bottom
		return 0, 2, 1
	}
}

func cellAt(u, v, w, x, y, z int) (int, int, int) {
	switch {
	case u == 0 && v == 1 && w == 2:
		return x, y, z
	case u == 2 && v == 1 && w == 0:
		return z, y, x
	default: // u==0, v==2, w==1
		return x, z, y
	}
}

func meshSide(in *Input, side voxel.Side, out *[]BlockVertex) int {
	u, v, w := axisFor(side)
	off := neighborOffset[side]

	size := [3]int{voxel.ChunkSize, voxel.ChunkSize, voxel.ChunkSize}

	quadCount := 0
	visited := make([][]bool, size[u])
	for i := range visited {
		visited[i] = make([]bool, size[v])
	}

	for w0 := 0; w0 < size[w]; w0++ {
		for i := range visited {
			for j := range visited[i] {
				visited[i][j] = false
			}
		}

		mask := make([][]voxel.BlockID, size[u])
		light := make([][]uint8, size[u])
		for i := range mask {
			mask[i] = make([]voxel.BlockID, size[v])
			light[i] = make([]uint8, size[v])
		}

		for v0 := 0; v0 < size[v]; v0++ {
			for u0 := 0; u0 < size[u]; u0++ {
				x, y, z := cellAt(u, v, w, u0, v0, w0)
				px, py, pz := x+1, y+1, z+1

				block := in.Blocks[px][py][pz]
				if block == voxel.Air {
					continue
				}
				nx, ny, nz := px+off[0], py+off[1], pz+off[2]
				neighbor := in.Blocks[nx][ny][nz]
				if !in.Types.IsSolid(neighbor) {
					mask[u0][v0] = block
					light[u0][v0] = in.Light[nx][ny][nz]
				}
			}
		}

		for v0 := 0; v0 < size[v]; v0++ {
			for u0 := 0; u0 < size[u]; u0++ {
				block := mask[u0][v0]
				if block == voxel.Air || visited[u0][v0] {
					continue
				}
				lv := light[u0][v0]

				width := 1
				for u1 := u0 + 1; u1 < size[u]; u1++ {
					if mask[u1][v0] != block || light[u1][v0] != lv || visited[u1][v0] {
						break
					}
					width++
				}

				height := 1
			extend:
				for v1 := v0 + 1; v1 < size[v]; v1++ {
					for u1 := u0; u1 < u0+width; u1++ {
						if mask[u1][v1] != block || light[u1][v1] != lv || visited[u1][v1] {
							break extend
						}
					}
					height++
				}

				for v1 := v0; v1 < v0+height; v1++ {
					for u1 := u0; u1 < u0+width; u1++ {
						visited[u1][v1] = true
					}
				}

				emitQuad(in, out, side, u, v, w, u0, v0, w0, width, height, block)
				quadCount++
			}
		}
	}
	return quadCount
}

// neighborLight samples the light one step through the face in direction
// off from grid position (cu, cv) at depth w0. cu/cv range one cell beyond
// the chunk's own 0..ChunkSize-1 span at a merged quad's outer corners;
// those reads land in the apron Assemble (assemble.go) fills from the
// appropriate edge or corner neighbor chunk.
func neighborLight(in *Input, u, v, w int, off [3]int, cu, cv, w0 int) uint8 {
	x, y, z := cellAt(u, v, w, cu, cv, w0)
	return in.Light[x+1+off[0]][y+1+off[1]][z+1+off[2]]
}

// cornerLight averages the four cells sharing the grid-line intersection
// (cu, cv), the four cube vertices that touch a quad corner.
func cornerLight(in *Input, u, v, w int, off [3]int, cu, cv, w0 int) uint8 {
	var sum int
	for _, d := range [4][2]int{{-1, -1}, {0, -1}, {-1, 0}, {0, 0}} {
		sum += int(neighborLight(in, u, v, w, off, cu+d[0], cv+d[1], w0))
	}
	return uint8(sum / 4)
}

// packCornerLight packs four 0-15 corner samples, in (u0,v0) /
// (u0+width,v0) / (u0+width,v0+height) / (u0,v0+height) order, into a
// 16-bit value, four bits per corner.
func packCornerLight(c00, c10, c11, c01 uint8) uint16 {
	return uint16(c00) | uint16(c10)<<4 | uint16(c11)<<8 | uint16(c01)<<12
}

// unpackCornerLight extracts one of packCornerLight's four nibbles (corner
// 0..3 in the same order pack used).
func unpackCornerLight(packed uint16, corner int) uint8 {
	return uint8((packed >> uint(4*corner)) & 0xF)
}

// emitQuad appends the four corner vertices of one merged quad, in the
// fixed winding order a renderer's static index buffer expects. Each
// corner gets its own Gouraud light sample: the four cube vertices
// touching it are averaged, packed into a 16-bit value (four bits per
// corner), then unpacked back out per vertex.
func emitQuad(in *Input, out *[]BlockVertex, side voxel.Side, u, v, w, u0, v0, w0, width, height int, block voxel.BlockID) {
	tex := in.Types.Get(block).TexForSide(side)
	off := neighborOffset[side]

	// wOffset places the quad on the solid cell's own far face (Back,
	// Right, Top look at w0+1; Front, Left, Bottom sit at w0 itself).
	wOffset := 0
	switch side {
	case voxel.SideBack, voxel.SideRight, voxel.SideTop:
		wOffset = 1
	}

	c00 := cornerLight(in, u, v, w, off, u0, v0, w0)
	c10 := cornerLight(in, u, v, w, off, u0+width, v0, w0)
	c11 := cornerLight(in, u, v, w, off, u0+width, v0+height, w0)
	c01 := cornerLight(in, u, v, w, off, u0, v0+height, w0)
	packed := packCornerLight(c00, c10, c11, c01)

	lightAt := func(du, dv int) uint8 {
		switch {
		case du == 0 && dv == 0:
			return unpackCornerLight(packed, 0)
		case du == width && dv == 0:
			return unpackCornerLight(packed, 1)
		case du == width && dv == height:
			return unpackCornerLight(packed, 2)
		default: // du == 0, dv == height
			return unpackCornerLight(packed, 3)
		}
	}

	corner := func(du, dv int) BlockVertex {
		x, y, z := cellAt(u, v, w, u0+du, v0+dv, w0+wOffset)
		sl := packSideLight(side, lightAt(du, dv))
		return BlockVertex{X: uint8(x), Y: uint8(y), Z: uint8(z), TexIndex: tex, SideAndLight: sl}
	}

	var quad [4]BlockVertex
	switch side {
	case voxel.SideFront, voxel.SideBottom, voxel.SideLeft:
		quad = [4]BlockVertex{corner(0, 0), corner(width, 0), corner(width, height), corner(0, height)}
	default:
		quad = [4]BlockVertex{corner(width, 0), corner(0, 0), corner(0, height), corner(width, height)}
	}
	*out = append(*out, quad[:]...)
}
