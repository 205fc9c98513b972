package littleprince

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyEscape

	keyCount
)

var keyToGlfw = map[int]glfw.Key{
	KeyW:      glfw.KeyW,
	KeyA:      glfw.KeyA,
	KeyS:      glfw.KeyS,
	KeyD:      glfw.KeyD,
	KeyRight:  glfw.KeyRight,
	KeyLeft:   glfw.KeyLeft,
	KeyDown:   glfw.KeyDown,
	KeyUp:     glfw.KeyUp,
	KeyEscape: glfw.KeyEscape,
}

// Command is the camera/application event enum. Input is translated
// into Commands once per frame; the camera controller consumes them
// without knowing anything about the windowing toolkit.
type Command int

const (
	CmdMoveForward Command = iota
	CmdMoveBack
	CmdMoveLeft
	CmdMoveRight
	CmdTurnLeft
	CmdTurnRight
	CmdLookUp
	CmdLookDown
	CmdQuit
)

// keyCommands maps key codes to Commands, in dispatch order.
var keyCommands = [keyCount]Command{
	KeyW:      CmdMoveForward,
	KeyS:      CmdMoveBack,
	KeyA:      CmdMoveLeft,
	KeyD:      CmdMoveRight,
	KeyLeft:   CmdTurnLeft,
	KeyRight:  CmdTurnRight,
	KeyUp:     CmdLookUp,
	KeyDown:   CmdLookDown,
	KeyEscape: CmdQuit,
}

type InputModule struct{}

type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool
}

// Commands returns one Command per key-press edge this frame. A held
// key produces a single command; there is no queuing or debouncing.
func (input *Input) Commands() []Command {
	var res []Command
	for key := 0; key < keyCount; key++ {
		if input.JustPressed[key] {
			res = append(res, keyCommands[key])
		}
	}
	return res
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)

		input.JustPressed[key] = false
		input.JustReleased[key] = false

		if glfw.Press == action {
			if !input.Pressed[key] {
				input.JustPressed[key] = true
			}
			input.Pressed[key] = true
		} else if glfw.Release == action {
			if input.Pressed[key] {
				input.JustReleased[key] = true
			}
			input.Pressed[key] = false
		}
	}
}
