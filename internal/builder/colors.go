// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package builder

import "math/rand"

// ColorFunc returns the display color for the i-th story (bottom-up).
// Injected so runs are reproducible; the engine only needs the values to
// be valid color ints.
type ColorFunc func(i int) int

// palette holds a handful of distinguishable BGR color values.
var palette = []int{
	0x4F81BD, // steel blue
	0xC0504D, // brick red
	0x9BBB59, // olive
	0x8064A2, // violet
	0xF79646, // orange
	0x4BACC6, // teal
}

// PaletteColors cycles a fixed palette, so story colors are stable
// between runs.
func PaletteColors() ColorFunc {
	return func(i int) int {
		return palette[i%len(palette)]
	}
}

// RandomColors draws colors from a seeded generator. The same seed
// reproduces the same sequence.
func RandomColors(seed int64) ColorFunc {
	rng := rand.New(rand.NewSource(seed))
	return func(int) int {
		return rng.Intn(0xFFFFFF + 1)
	}
}
