package littleprince

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_Commands_emptyWithoutEdges(t *testing.T) {
	input := &Input{}
	assert.Empty(t, input.Commands())
}

func TestInput_Commands_mapsKeysToCommands(t *testing.T) {
	cases := map[int]Command{
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
	for key, want := range cases {
		input := &Input{}
		input.JustPressed[key] = true

		commands := input.Commands()
		assert.Equal(t, []Command{want}, commands, "key %d", key)
	}
}

func TestInput_Commands_heldKeyFiresOnce(t *testing.T) {
	input := &Input{}
	input.JustPressed[KeyW] = true
	input.Pressed[KeyW] = true

	assert.Len(t, input.Commands(), 1)

	// Next frame: key still held but no new edge.
	input.JustPressed[KeyW] = false
	assert.Empty(t, input.Commands(), "a held key must not repeat its command")
}

func TestInput_Commands_multipleEdgesSameFrame(t *testing.T) {
	input := &Input{}
	input.JustPressed[KeyW] = true
	input.JustPressed[KeyLeft] = true

	commands := input.Commands()
	assert.Len(t, commands, 2)
	assert.Contains(t, commands, CmdMoveForward)
	assert.Contains(t, commands, CmdTurnLeft)
}
