package littleprince

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraState_startsAtEyeStart(t *testing.T) {
	c := NewCameraState()

	assert.Equal(t, EyeStart, c.Eye)
	assert.Equal(t, float32(0), c.Theta)
	assert.Equal(t, float32(0), c.Phi)
	assert.True(t, c.TakeRedraw(), "a fresh camera needs an initial draw")
	assert.False(t, c.TakeRedraw(), "TakeRedraw must clear the request")
}

func TestCameraState_TryMove_acceptsInsideSafetyRadius(t *testing.T) {
	c := NewCameraState()

	ok := c.TryMove(mgl32.Vec3{0, 0, -1})

	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 0, 7}, c.Eye)
	assert.True(t, c.TakeRedraw())
}

func TestCameraState_TryMove_rejectsBeyondSafetyRadius(t *testing.T) {
	c := NewCameraState()
	c.TakeRedraw()

	ok := c.TryMove(mgl32.Vec3{0, 0, SafetyRadius})

	assert.False(t, ok)
	assert.Equal(t, EyeStart, c.Eye, "a rejected move must not change the eye")
	assert.False(t, c.TakeRedraw(), "a rejected move must not request a redraw")
}

func TestCameraState_TryMove_boundaryIsInclusive(t *testing.T) {
	c := NewCameraState()
	c.Eye = mgl32.Vec3{0, 0, 0}

	ok := c.TryMove(mgl32.Vec3{SafetyRadius, 0, 0})

	assert.True(t, ok, "a candidate exactly on the boundary is allowed")
}

func TestCameraState_EyeNeverEscapesUnderAnyCommandSequence(t *testing.T) {
	c := NewCameraState()
	commands := []Command{
		CmdMoveForward, CmdMoveForward, CmdTurnLeft, CmdMoveForward,
		CmdMoveLeft, CmdMoveLeft, CmdLookUp, CmdMoveBack,
		CmdTurnRight, CmdMoveRight, CmdMoveForward, CmdMoveForward,
	}
	for i := 0; i < 200; i++ {
		c.Handle(commands[i%len(commands)])
		dist := c.Eye.Sub(SkyCenter).Len()
		if dist > SafetyRadius+vecEpsilon {
			t.Fatalf("eye escaped after %d commands: distance %v > %v", i+1, dist, SafetyRadius)
		}
	}
}

func TestCameraState_MoveDelta_followsYaw(t *testing.T) {
	c := NewCameraState()

	// Facing -z at theta 0
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, c.MoveDelta(CmdMoveForward), "forward at yaw 0")
	assertVec3Near(t, mgl32.Vec3{0, 0, 1}, c.MoveDelta(CmdMoveBack), "back at yaw 0")
	assertVec3Near(t, mgl32.Vec3{-1, 0, 0}, c.MoveDelta(CmdMoveLeft), "left at yaw 0")
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, c.MoveDelta(CmdMoveRight), "right at yaw 0")

	// Quarter turn left: forward now points down -x
	c.Theta = 90
	assertVec3Near(t, mgl32.Vec3{-1, 0, 0}, c.MoveDelta(CmdMoveForward), "forward at yaw 90")
}

func TestCameraState_Turn_yawWrapsInto360(t *testing.T) {
	c := NewCameraState()

	c.Theta = 0
	c.Turn(CmdTurnRight)
	assert.Equal(t, float32(355), c.Theta, "turning right from 0 wraps to 355")

	c.Theta = 355
	c.Turn(CmdTurnLeft)
	assert.Equal(t, float32(0), c.Theta, "turning left from 355 wraps to 0")
}

func TestCameraState_Turn_inversePairsCancel(t *testing.T) {
	c := NewCameraState()
	c.Theta = 40
	c.Phi = -15

	c.Turn(CmdTurnLeft)
	c.Turn(CmdTurnRight)
	c.Turn(CmdLookUp)
	c.Turn(CmdLookDown)

	assert.Equal(t, float32(40), c.Theta)
	assert.Equal(t, float32(-15), c.Phi)
}

func TestCameraState_Turn_pitchClamps(t *testing.T) {
	c := NewCameraState()

	for i := 0; i < 50; i++ {
		c.Turn(CmdLookUp)
	}
	assert.Equal(t, float32(90), c.Phi, "pitch clamps at +90")

	for i := 0; i < 100; i++ {
		c.Turn(CmdLookDown)
	}
	assert.Equal(t, float32(-90), c.Phi, "pitch clamps at -90")
}

func TestCameraState_Handle_ownsOnlyCameraCommands(t *testing.T) {
	c := NewCameraState()

	assert.True(t, c.Handle(CmdMoveForward))
	assert.True(t, c.Handle(CmdTurnLeft))
	assert.False(t, c.Handle(CmdQuit), "quit is not a camera command")
}

func TestCameraState_LookTarget_tracksAngles(t *testing.T) {
	c := NewCameraState()

	assertVec3Near(t, c.Eye.Add(mgl32.Vec3{0, 0, -1}), c.LookTarget(), "look target at rest")

	c.Phi = 90
	target := c.LookTarget()
	if target.Y() <= c.Eye.Y() {
		t.Errorf("looking up should raise the target above the eye")
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float32]float32{
		0:    0,
		360:  0,
		365:  5,
		-5:   355,
		-360: 0,
		725:  5,
	}
	for in, want := range cases {
		if got := wrapDegrees(in); got != want {
			t.Errorf("wrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}
