package worldgen

import "math"

// valueNoise2D is a seeded integer-lattice value noise: hash the four
// lattice corners around (x, z), then smooth-interpolate between them.
// It has none of simplex/Perlin noise's gradient continuity guarantees,
// but is dependency-free and good enough for a rolling height field.
func valueNoise2D(seed int64, x, z float64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	x1 := x0 + 1
	z1 := z0 + 1

	sx := smooth(x - x0)
	sz := smooth(z - z0)

	v00 := latticeHash(seed, int64(x0), int64(z0))
	v10 := latticeHash(seed, int64(x1), int64(z0))
	v01 := latticeHash(seed, int64(x0), int64(z1))
	v11 := latticeHash(seed, int64(x1), int64(z1))

	top := lerp(v00, v10, sx)
	bottom := lerp(v01, v11, sx)
	return lerp(top, bottom, sz)
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// latticeHash maps an integer lattice point to a pseudo-random value in
// [-1, 1], stable across calls for the same (seed, x, z).
func latticeHash(seed, x, z int64) float64 {
	h := uint64(x)*374761393 + uint64(z)*668265263 + uint64(seed)*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h%2000001)/1000000.0 - 1.0
}
