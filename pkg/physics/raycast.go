package physics

import "github.com/go-gl/mathgl/mgl32"

const (
	rayStepSize = 0.0625
	rayMaxSteps = 64
)

// RaycastHit describes what a Raycast found, in both the solid cell that
// stopped the ray and the last empty cell the ray passed through before
// it (the usual "place here" target when the hit is used for block
// placement rather than mining).
type RaycastHit struct {
	Hit     bool
	Block   [3]int32
	Before  [3]int32
	Side    Side
	Distance float32
}

// Side names the direction of the final step from Before into Block:
// SidePosX means the ray moved toward +X to reach the hit block.
type Side int

const (
	SideNone Side = iota
	SideNegX
	SidePosX
	SideNegY
	SidePosY
	SideNegZ
	SidePosZ
)

func cellOf(p mgl32.Vec3) [3]int32 {
	return [3]int32{
		int32(floorf(p.X())),
		int32(floorf(p.Y())),
		int32(floorf(p.Z())),
	}
}

func floorf(v float32) float32 {
	i := float32(int32(v))
	if v < 0 && i != v {
		i--
	}
	return i
}

// Raycast marches from origin along dir (need not be normalized; it's
// normalized internally) in fixed rayStepSize increments, up to maxDist
// or rayMaxSteps, whichever comes first. It returns immediately with no
// hit if origin itself is inside a solid cell — mirrors the reference
// behavior of never reporting a "hit" for the cell the camera already
// occupies.
func Raycast(q BlockQuery, origin, dir mgl32.Vec3, maxDist float32) RaycastHit {
	if dir.Len() < 1e-8 {
		return RaycastHit{}
	}
	dir = dir.Normalize().Mul(rayStepSize)

	start := cellOf(origin)
	if q.IsSolid(start[0], start[1], start[2]) {
		return RaycastHit{}
	}

	pos := origin
	prevCell := start
	for i := 0; i < rayMaxSteps; i++ {
		dist := float32(i) * rayStepSize
		if dist > maxDist {
			break
		}
		pos = pos.Add(dir)
		cell := cellOf(pos)
		if cell == prevCell {
			continue
		}
		if q.IsSolid(cell[0], cell[1], cell[2]) {
			return RaycastHit{
				Hit:      true,
				Block:    cell,
				Before:   prevCell,
				Side:     sideBetween(prevCell, cell),
				Distance: dist,
			}
		}
		prevCell = cell
	}
	return RaycastHit{}
}

func sideBetween(from, to [3]int32) Side {
	switch {
	case to[0] < from[0]:
		return SideNegX
	case to[0] > from[0]:
		return SidePosX
	case to[1] < from[1]:
		return SideNegY
	case to[1] > from[1]:
		return SidePosY
	case to[2] < from[2]:
		return SideNegZ
	case to[2] > from[2]:
		return SidePosZ
	default:
		return SideNone
	}
}
