package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats are the per-frame simulation counters the sandbox feeds the overlay.
type Stats struct {
	Bodies   int
	Sleeping int
	Contacts int
	SubSteps int
	Paused   bool
}

// Debug holds runtime debugging overlays (FPS, memory, simulation stats).
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool

	stats        Stats
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowStats sets whether the simulation counters are drawn.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// SetStats records this frame's simulation counters. Call before Draw.
func (d *Debug) SetStats(s Stats) {
	d.stats = s
}

// Draw renders any enabled debug overlays at the top-right. Call last in
// the draw loop. FPS and memory text is only recomputed every
// updateInterval frames to limit allocations; the simulation counters are
// cheap and drawn from the current Stats every frame.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowStats {
		s := d.stats
		drawRight(fmt.Sprintf("Bodies: %d (%d asleep)", s.Bodies, s.Sleeping), screenW, y, rl.Green)
		y += lineHeight
		drawRight(fmt.Sprintf("Contacts: %d", s.Contacts), screenW, y, rl.Green)
		y += lineHeight
		drawRight(fmt.Sprintf("Sub-steps: %d", s.SubSteps), screenW, y, rl.Green)
		y += lineHeight
		if s.Paused {
			drawRight("PAUSED", screenW, y, rl.Yellow)
		}
	}
}

func drawRight(text string, screenW, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
