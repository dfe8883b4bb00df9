package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run starts the window and main loop. Each frame it calls update (input, stepping),
// then clears the screen and calls draw. This keeps the graphics layer separate
// from simulation and overlay content.
func Run(width, height int32, title string, update, draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
