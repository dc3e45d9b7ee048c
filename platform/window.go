package platform

import (
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/glfw/v3.3/glfw"

	"orbit-cubes/core"
	"orbit-cubes/scene"
)

func init() {
	runtime.LockOSThread()
}

// KeyHandler receives the character of a pressed or auto-repeated key.
type KeyHandler func(key rune)

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onKeyDown KeyHandler
}

// NewWindow opens a fixed-size window with a current OpenGL 4.1 core
// context.
func NewWindow(config core.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}
	handle.SetInputMode(glfw.LockKeyMods, glfw.True)
	handle.SetKeyCallback(window.keyEvent)

	return window, nil
}

// OnKeyDown installs the key-down handler. It runs inside PollEvents.
func (w *Window) OnKeyDown(h KeyHandler) {
	w.onKeyDown = h
}

func (w *Window) keyEvent(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if key == glfw.KeyEscape {
		w.Handle.SetShouldClose(true)
		return
	}
	if w.onKeyDown == nil {
		return
	}
	if r, ok := keyRune(key, scancode); ok {
		w.onKeyDown(scene.KeyChar(r, mods&glfw.ModShift != 0, mods&glfw.ModCapsLock != 0))
	}
}

// keyRune resolves the unshifted character the current keyboard layout
// prints for key, falling back to the US letter positions.
func keyRune(key glfw.Key, scancode int) (rune, bool) {
	if name := glfw.GetKeyName(key, scancode); utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(strings.ToLower(name))
		return r, true
	}
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return 'a' + rune(key-glfw.KeyA), true
	}
	return 0, false
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
