package mesh

import (
	"testing"

	"github.com/leterax/voxelcore/pkg/voxel"
)

func newInput() (*Input, voxel.BlockID) {
	types := voxel.NewBlockTypeTable()
	stone := types.Register(voxel.BlockType{
		Name: "stone", Solid: true,
		Tex: [voxel.NumSides]uint8{1, 1, 1, 1, 1, 1},
	})
	in := &Input{Types: types}
	for x := 0; x < padded; x++ {
		for y := 0; y < padded; y++ {
			for z := 0; z < padded; z++ {
				in.Light[x][y][z] = 15
			}
		}
	}
	return in, stone
}

func TestBuildEmptyChunkProducesNoVertices(t *testing.T) {
	in, _ := newInput()
	res := Build(in)
	if len(res.Vertices) != 0 {
		t.Fatalf("empty chunk produced %d vertices, want 0", len(res.Vertices))
	}
	for s := 0; s < voxel.NumSides; s++ {
		if res.SideSquareCount[s] != 0 {
			t.Fatalf("side %d quad count = %d, want 0", s, res.SideSquareCount[s])
		}
	}
}

func TestBuildSingleBlockProducesSixQuads(t *testing.T) {
	in, stone := newInput()
	in.Blocks[16][16][16] = stone

	res := Build(in)

	total := 0
	for s := 0; s < voxel.NumSides; s++ {
		total += res.SideSquareCount[s]
		if res.SideSquareCount[s] != 1 {
			t.Fatalf("side %d produced %d quads, want 1 (single isolated block)", s, res.SideSquareCount[s])
		}
	}
	if total != 6 {
		t.Fatalf("total quads = %d, want 6", total)
	}
	if len(res.Vertices) != 6*4 {
		t.Fatalf("vertex count = %d, want 24", len(res.Vertices))
	}
}

func TestBuildMergesAFlatSlabIntoOneTopQuad(t *testing.T) {
	in, stone := newInput()
	// A 4x1x4 slab of stone: the top face should greedy-merge into a
	// single quad rather than 16 unit quads.
	for x := 10; x < 14; x++ {
		for z := 10; z < 14; z++ {
			in.Blocks[x][16][z] = stone
		}
	}

	res := Build(in)

	if got := res.SideSquareCount[voxel.SideTop]; got != 1 {
		t.Fatalf("top side quad count = %d, want 1 merged quad", got)
	}
}

func TestBuildTopFaceCornerLightIsPerVertexAverage(t *testing.T) {
	in, stone := newInput()
	in.Blocks[17][17][17] = stone // real (16,16,16)

	// One of the four cube vertices touching the quad's far corner reads
	// 3 instead of 15; only the corner whose 2x2 sample window includes
	// it should average down, and only its one vertex.
	in.Light[18][18][18] = 3

	res := Build(in)

	if got := res.SideSquareCount[voxel.SideTop]; got != 1 {
		t.Fatalf("top side quad count = %d, want 1", got)
	}
	verts := res.Vertices[res.SideStart[voxel.SideTop] : res.SideStart[voxel.SideTop]+4]

	lights := make([]uint8, 4)
	for i, vtx := range verts {
		lights[i] = vtx.SideAndLight >> 4
	}
	want := []uint8{15, 15, 15, 12}
	for i := range want {
		if lights[i] != want[i] {
			t.Fatalf("vertex %d light = %d, want %d (got %v)", i, lights[i], want[i], lights)
		}
	}
}

func TestBuildSkipsFaceAdjacentToSolidNeighbor(t *testing.T) {
	in, stone := newInput()
	in.Blocks[16][16][16] = stone
	in.Blocks[17][16][16] = stone // +X neighbor solid: shared face should vanish

	res := Build(in)

	// Both blocks' Right/Left faces facing each other are now interior,
	// so total quads should be less than two isolated blocks' 12.
	total := 0
	for s := 0; s < voxel.NumSides; s++ {
		total += res.SideSquareCount[s]
	}
	if total >= 12 {
		t.Fatalf("total quads = %d, want fewer than 12 (shared face should be culled)", total)
	}
}
