package littleprince

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// Projection holds the perspective parameters. Only the aspect ratio
// changes at runtime, on window resize.
type Projection struct {
	Fovy   float32
	Near   float32
	Far    float32
	Width  int
	Height int
}

// SetViewport records a new window size. A degenerate height is
// clamped to 1 so the aspect ratio never divides by zero.
func (p *Projection) SetViewport(width, height int) {
	if height == 0 {
		height = 1
	}
	p.Width = width
	p.Height = height
}

func (p *Projection) Aspect() float32 {
	return float32(p.Width) / float32(p.Height)
}

func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.Fovy), p.Aspect(), p.Near, p.Far)
}

// PlatformWindowModule creates the single shared GLFW window and the
// Projection resource, and polls window events once per frame.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = WindowWidth
	}
	if height <= 0 {
		height = WindowHeight
	}
	if title == "" {
		title = "Little Prince's Lair"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	ws := createWindowState(m.Width, m.Height, m.Title)
	projection := &Projection{
		Fovy: ProjectionFovy,
		Near: ProjectionNear,
		Far:  ProjectionFar,
	}
	projection.SetViewport(m.Width, m.Height)

	cmd.AddResources(ws, projection)
	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func windowEventsSystem(s *WindowState, projection *Projection, cmd *Commands) {
	glfw.PollEvents()

	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
		return
	}

	width, height := s.windowGlfw.GetSize()
	if width != s.WindowWidth || height != s.WindowHeight {
		s.WindowWidth = width
		s.WindowHeight = height
		projection.SetViewport(width, height)
	}
}
