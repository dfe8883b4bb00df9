// Package worldgen builds procedural body arrangements for stress-testing
// the broad phase: box pyramids and randomized body rain. Generators emit
// scene body definitions so the results instantiate through the same path
// as file-loaded scenes.
package worldgen

import (
	"time"

	"physics-engine/internal/scene"
)

// PyramidOptions controls pyramid generation. Rows is the height in
// courses; BoxSize the side length of one box; Spacing the extra gap
// between neighbors. Seed controls the per-box jitter; Seed == 0 uses a
// time-based seed.
type PyramidOptions struct {
	Rows    int
	BoxSize float32
	Spacing float32
	Jitter  float32
	BaseX   float32
	BaseY   float32
	Seed    int64
}

// DefaultPyramidOptions returns a sane default configuration.
func DefaultPyramidOptions() PyramidOptions {
	return PyramidOptions{
		Rows:    8,
		BoxSize: 1,
		Spacing: 0.05,
		Jitter:  0.02,
	}
}

// Pyramid builds a pyramid of dynamic boxes: Rows courses, each one box
// narrower than the course below, centered on (BaseX, BaseY) with the
// bottom course resting at BaseY. A small deterministic horizontal jitter
// keeps the stack from being perfectly aligned.
func Pyramid(opts PyramidOptions) []scene.BodyDef {
	if opts.Rows <= 0 {
		return nil
	}
	if opts.BoxSize <= 0 {
		opts.BoxSize = 1
	}
	if opts.Spacing < 0 {
		opts.Spacing = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pitch := opts.BoxSize + opts.Spacing
	var defs []scene.BodyDef
	for row := 0; row < opts.Rows; row++ {
		count := opts.Rows - row
		rowWidth := float32(count-1) * pitch
		y := opts.BaseY + opts.BoxSize*0.5 + float32(row)*pitch
		for i := 0; i < count; i++ {
			jitter := (hash2D(int32(row), int32(i), int32(seed)) - 0.5) * 2 * opts.Jitter
			x := opts.BaseX - rowWidth*0.5 + float32(i)*pitch + jitter
			defs = append(defs, boxDef(x, y, opts.BoxSize))
		}
	}
	return defs
}

// RainOptions controls body rain generation. Count bodies are scattered
// in the horizontal band [MinX, MaxX] at heights [MinY, MaxY];
// CircleRatio in [0,1] is the fraction of circles among the spawned
// bodies. Seed == 0 uses a time-based seed.
type RainOptions struct {
	Count       int
	MinX, MaxX  float32
	MinY, MaxY  float32
	Size        float32
	CircleRatio float32
	Seed        int64
}

// DefaultRainOptions returns a sane default configuration.
func DefaultRainOptions() RainOptions {
	return RainOptions{
		Count:       40,
		MinX:        -12,
		MaxX:        12,
		MinY:        6,
		MaxY:        16,
		Size:        0.8,
		CircleRatio: 0.5,
	}
}

// Rain scatters dynamic boxes and circles over the configured band. Same
// seed, same bodies.
func Rain(opts RainOptions) []scene.BodyDef {
	if opts.Count <= 0 {
		return nil
	}
	if opts.Size <= 0 {
		opts.Size = 1
	}
	if opts.MaxX < opts.MinX {
		opts.MinX, opts.MaxX = opts.MaxX, opts.MinX
	}
	if opts.MaxY < opts.MinY {
		opts.MinY, opts.MaxY = opts.MaxY, opts.MinY
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	defs := make([]scene.BodyDef, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		n := int32(i)
		x := opts.MinX + hash2D(n, 0, int32(seed))*(opts.MaxX-opts.MinX)
		y := opts.MinY + hash2D(n, 1, int32(seed))*(opts.MaxY-opts.MinY)
		if hash2D(n, 2, int32(seed)) < opts.CircleRatio {
			defs = append(defs, circleDef(x, y, opts.Size*0.5))
			continue
		}
		defs = append(defs, boxDef(x, y, opts.Size))
	}
	return defs
}

func boxDef(x, y, size float32) scene.BodyDef {
	return scene.BodyDef{
		Position: &scene.VecDef{X: x, Y: y},
		Shape:    &scene.ShapeDef{Kind: "box", Width: size, Height: size},
	}
}

func circleDef(x, y, radius float32) scene.BodyDef {
	return scene.BodyDef{
		Position: &scene.VecDef{X: x, Y: y},
		Shape:    &scene.ShapeDef{Kind: "circle", Radius: radius},
	}
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}
