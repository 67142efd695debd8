package window

import (
	"fmt"
	"runtime"

	"Viewer3D/internal/config"
	"Viewer3D/internal/engine"
	"Viewer3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var toolKeys = map[glfw.Key]string{
	glfw.Key1: "cursor",
	glfw.Key2: "position",
	glfw.Key3: "rotate",
	glfw.Key4: "scale",
}

// Window drives a Session from a glfw window: mouse clicks become pick
// events, number keys select tools.
type Window struct {
	session *engine.Session
	cfg     config.Config
	window  *glfw.Window
	title   string
	log     *zap.Logger
}

func New(session *engine.Session, cfg config.Config, log *zap.Logger) *Window {
	return &Window{
		session: session,
		cfg:     cfg,
		log:     logger.OrNop(log),
	}
}

// Run opens the window and blocks until it is closed. It must be called from
// the main goroutine.
func (w *Window) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(int(w.session.Width), int(w.session.Height), w.cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	w.window = win
	defer win.Destroy()

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	glfw.SwapInterval(1)
	win.SetPos(w.cfg.Window.X, w.cfg.Window.Y)

	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetKeyCallback(w.keyCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	w.log.Info("Window opened",
		zap.Int32("width", w.session.Width),
		zap.Int32("height", w.session.Height))

	w.renderLoop()
	return nil
}

func (w *Window) renderLoop() {
	c := w.cfg.ClearColor
	for !w.window.ShouldClose() {
		glfw.PollEvents()
		if n := w.session.ProcessEvents(); n > 0 {
			w.updateTitle()
		}

		gl.ClearColor(c[0], c[1], c[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		w.window.SwapBuffers()
	}
}

func (w *Window) updateTitle() {
	title := fmt.Sprintf("%s - %s", w.cfg.Window.Title, w.session.Status())
	if title != w.title {
		w.window.SetTitle(title)
		w.title = title
	}
}

func (w *Window) mouseButtonCallback(win *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	// Cursor positions are in screen coordinates, matching the session size.
	x, y := win.GetCursorPos()
	w.session.Click(float32(x), float32(y))
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		win.SetShouldClose(true)
		return
	}
	if key == glfw.KeyDelete || key == glfw.KeyBackspace {
		w.session.Deselect()
		return
	}
	if name, ok := toolKeys[key]; ok {
		w.session.SelectTool(name)
	}
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	winWidth, winHeight := win.GetSize()
	w.session.Resize(int32(winWidth), int32(winHeight))
}
