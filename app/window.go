package app

import (
	"image"

	"github.com/db47h/nucleus"
	"github.com/db47h/nucleus/app/event"
	"github.com/db47h/nucleus/gl"
	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Init initializes GLFW.
//
func Init() error {
	return glfw.Init()
}

// Terminate destroys all remaining windows and releases GLFW resources.
//
func Terminate() {
	glfw.Terminate()
}

// DriverVersion returns the GLFW and GL versions. A window must have been
// created.
//
func DriverVersion() string {
	return "GLFW " + glfw.GetVersionString() + " - " + gogl.GoStr(gogl.GetString(gogl.VENDOR)) + " " + gl.Version()
}

// A Window is a GLFW window with a current GL context. It implements
// loop.EventProcessor.
//
type Window struct {
	w       *glfw.Window
	screen  *nucleus.Screen
	profile nucleus.Profile
	events  []event.Interface
	resized bool
	log     *zap.Logger
}

// NewWindow creates a window, makes its GL context current and initializes
// the GL bindings.
//
func NewWindow(opts ...WindowOption) (*Window, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.set(&cfg)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.samples)

	var (
		monitor *glfw.Monitor
		width   = cfg.w
		height  = cfg.h
	)
	if cfg.fullScreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width = mode.Width
		height = mode.Height
	}
	positioned := !cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0
	if cfg.hidden || positioned {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}
	w, err := glfw.CreateWindow(width, height, cfg.title, monitor, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	if positioned {
		w.SetPos(cfg.x, cfg.y)
		if !cfg.hidden {
			w.Show()
		}
	}

	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, errors.Wrap(err, "init GL")
	}
	glfw.SwapInterval(cfg.swapInterval)

	fw, fh := w.GetFramebufferSize()
	win := &Window{
		w:       w,
		screen:  nucleus.NewScreen(image.Pt(fw, fh)),
		profile: gl.CurrentProfile(),
		resized: true,
		log:     cfg.log,
	}
	w.SetFramebufferSizeCallback(win.onFramebufferSize)
	w.SetCloseCallback(func(*glfw.Window) { win.events = append(win.events, event.WindowClose{}) })
	w.SetKeyCallback(win.onKey)
	w.SetMouseButtonCallback(win.onMouseButton)
	w.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		win.events = append(win.events, event.Scroll{DX: dx, DY: dy})
	})

	win.log.Info("window created",
		zap.String("driver", DriverVersion()),
		zap.Int("glesMajor", win.profile.GLESMajor),
		zap.Int("glesMinor", win.profile.GLESMinor),
		zap.Bool("uniformBlocks", win.profile.UniformBlocks))
	return win, nil
}

func (w *Window) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.screen.SetSize(image.Pt(width, height))
	w.resized = true
	w.events = append(w.events, event.FrameBufferSize{Width: width, Height: height})
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press, glfw.Repeat:
		w.events = append(w.events, event.KeyDown{Key: int(key), Scancode: scancode, Mods: int(mods), Repeat: action == glfw.Repeat})
	case glfw.Release:
		w.events = append(w.events, event.KeyUp{Key: int(key), Scancode: scancode, Mods: int(mods)})
	}
}

func (w *Window) onMouseButton(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	x, y := gw.GetCursorPos()
	w.events = append(w.events, event.MouseButton{
		Button:  int(button),
		Pressed: action == glfw.Press,
		Mods:    int(mods),
		Pos:     nucleus.Pt(float32(x), float32(y)),
	})
}

// ProcessEvents swaps buffers, polls events and reports whether the window
// should close. Pending events are available from Events.
//
func (w *Window) ProcessEvents() bool {
	w.w.SwapBuffers()
	glfw.PollEvents()
	return w.w.ShouldClose()
}

// Events returns the events received since the last call.
//
func (w *Window) Events() []event.Interface {
	evs := w.events
	w.events = w.events[:0:0]
	return evs
}

// UpdateViewport sets the GL viewport to the whole framebuffer if its size
// changed since the last call.
//
func (w *Window) UpdateViewport() {
	if !w.resized {
		return
	}
	sz := w.screen.Size()
	gogl.Viewport(0, 0, int32(sz.X), int32(sz.Y))
	w.resized = false
}

// Close requests the window to close.
//
func (w *Window) Close() {
	w.w.SetShouldClose(true)
}

func (w *Window) Screen() *nucleus.Screen { return w.screen }

// Profile returns the GPU profile of the window's GL context.
//
func (w *Window) Profile() nucleus.Profile { return w.profile }

func (w *Window) NativeHandle() interface{} { return w.w }

func (w *Window) Destroy() {
	w.w.Destroy()
}
