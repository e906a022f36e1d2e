// Package mapview renders a top-down PNG of resident world chunks, one
// pixel per column, colored by the palette color of the topmost non-air
// block or fluid cell. It's a debug/ops tool, not part of the simulation
// proper.
package mapview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/leterax/voxelcore/pkg/voxel"
	"github.com/leterax/voxelcore/pkg/world"
)

// RegionSize is the edge length, in world-space blocks, of the full-
// resolution region image rendered before downsampling.
const RegionSize = 4096

// Render walks every resident block chunk centered on (centerX, centerZ),
// rasterizes each column's topmost non-air block or fluid cell into a
// RegionSize^2 image, then downsamples it to outSize^2 before writing
// path as PNG.
func Render(w *world.World, types *voxel.BlockTypeTable, centerX, centerZ int32, outSize int, path string) error {
	full := image.NewRGBA(image.Rect(0, 0, RegionSize, RegionSize))

	originX := centerX - RegionSize/2
	originZ := centerZ - RegionSize/2

	chunkSpan := int32(voxel.ChunkSize)
	for cx := originX / chunkSpan; cx <= (originX+RegionSize)/chunkSpan; cx++ {
		for cz := originZ / chunkSpan; cz <= (originZ+RegionSize)/chunkSpan; cz++ {
			paintColumn(full, w, types, cx, cz, originX, originZ)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, outSize, outSize))
	draw.CatmullRom.Scale(out, out.Bounds(), full, full.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapview: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("mapview: encoding %s: %w", path, err)
	}
	return nil
}

// paintColumn rasterizes every (x, z) column of one chunk by scanning
// down for the first non-air block or fluid cell across the resident
// Y-chunks from chunk Y +8 down to -8 at that (X, Z). Columns with
// nothing found in that range are left untouched (transparent).
func paintColumn(img *image.RGBA, w *world.World, types *voxel.BlockTypeTable, cx, cz int32, originX, originZ int32) {
	const searchChunksUp = 8
	for lx := 0; lx < voxel.ChunkSize; lx++ {
		for lz := 0; lz < voxel.ChunkSize; lz++ {
			col := findSurfaceColor(w, types, cx, cz, lx, lz, searchChunksUp)
			if col == nil {
				continue
			}
			px := int32(cx)*voxel.ChunkSize + int32(lx) - originX
			pz := int32(cz)*voxel.ChunkSize + int32(lz) - originZ
			if px < 0 || pz < 0 || px >= RegionSize || pz >= RegionSize {
				continue
			}
			img.Set(int(px), int(pz), *col)
		}
	}
}

func findSurfaceColor(w *world.World, types *voxel.BlockTypeTable, cx, cz int32, lx, lz, searchUp int) *color.RGBA {
	for cy := int32(searchUp); cy >= -int32(searchUp); cy-- {
		coord := voxel.ChunkCoord{X: cx, Y: cy, Z: cz}
		chunk, ok := w.Block(coord)
		if !ok {
			continue
		}
		fluid, _ := w.Fluid(coord)
		for ly := voxel.ChunkSize - 1; ly >= 0; ly-- {
			id := chunk.Get(lx, ly, lz)
			if id == voxel.Air {
				// An open column still counts as surface once it holds
				// fluid (a sea has no block here, only water).
				if fluid != nil {
					if kind := fluid.Get(lx, ly, lz); kind != voxel.Air {
						c := types.Get(kind).PaletteColor
						return &color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
					}
				}
				continue
			}
			c := types.Get(id).PaletteColor
			return &color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		}
	}
	return nil
}
