// Package app creates a GLFW window with a GL context and turns window
// callbacks into events.
//
// Functions in this package must be called from the main goroutine.
//
package app

import (
	"runtime"

	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

// WindowOption configures a window created by NewWindow.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	fullScreen   bool
	hidden       bool
	x, y, w, h   int
	title        string
	major, minor int
	samples      int
	swapInterval int
	log          *zap.Logger
}

func defaultConfig() winCfg {
	return winCfg{
		title:        "nucleus",
		x:            -1,
		y:            -1,
		w:            800,
		h:            600,
		major:        4,
		minor:        1,
		samples:      4,
		swapInterval: 1,
		log:          zap.NewNop(),
	}
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

func Title(title string) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.title = title
	})
}

// Pos sets the window position. A negative coordinate lets the window
// manager decide.
//
func Pos(x, y int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.x, cfg.y = x, y
	})
}

func Size(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.w, cfg.h = w, h
	})
}

// FullScreen creates a full screen window on the primary monitor, using its
// current video mode.
//
func FullScreen() WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.fullScreen = true
	})
}

func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

// ContextVersion requests a core profile GL context of the given version.
// The default is 4.1.
//
func ContextVersion(major, minor int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.major, cfg.minor = major, minor
	})
}

// Samples sets the number of MSAA samples. The default is 4.
//
func Samples(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.samples = n
	})
}

// SwapInterval sets the number of screen updates to wait for before swapping
// buffers. 0 disables vsync. The default is 1.
//
func SwapInterval(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.swapInterval = n
	})
}

func Logger(l *zap.Logger) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.log = l
	})
}
