package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindowHandlers installs the resize and focus callbacks for app.
func SetupWindowHandlers(app *App) {
	window := app.window

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			return
		}
		gl.Viewport(0, 0, int32(width), int32(height))
		app.session.Resize(width, height)

		// Repaint during live resize, when the main loop is blocked.
		app.session.Render()
		w.SwapBuffers()
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		app.setFocused(focused)
	})
}
