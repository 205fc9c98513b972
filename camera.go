package littleprince

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState owns the eye position and look direction. Theta is the
// yaw and Phi the pitch, both in degrees. Every position change goes
// through TryMove, which enforces the spherical containment invariant:
// the eye never leaves the safety radius around the sky centre.
type CameraState struct {
	Eye   mgl32.Vec3
	Theta float32
	Phi   float32

	redraw bool
}

func NewCameraState() *CameraState {
	return &CameraState{
		Eye:    EyeStart,
		Theta:  0,
		Phi:    0,
		redraw: true,
	}
}

// TryMove commits Eye+delta only if the candidate stays within the
// safety radius of the sky centre. Out-of-bounds moves are not errors,
// just silently rejected transitions.
func (c *CameraState) TryMove(delta mgl32.Vec3) bool {
	candidate := c.Eye.Add(delta)
	if candidate.Sub(SkyCenter).Len() <= SafetyRadius {
		c.Eye = candidate
		c.redraw = true
		return true
	}
	return false
}

// MoveDelta returns the unit step in the horizontal plane for one of
// the four cardinal move commands, rotated by the current yaw.
func (c *CameraState) MoveDelta(command Command) mgl32.Vec3 {
	sin := float32(math.Sin(float64(mgl32.DegToRad(c.Theta))))
	cos := float32(math.Cos(float64(mgl32.DegToRad(c.Theta))))

	switch command {
	case CmdMoveForward:
		return mgl32.Vec3{-sin, 0, -cos}
	case CmdMoveBack:
		return mgl32.Vec3{sin, 0, cos}
	case CmdMoveLeft:
		return mgl32.Vec3{-cos, 0, sin}
	case CmdMoveRight:
		return mgl32.Vec3{cos, 0, -sin}
	}
	return mgl32.Vec3{}
}

// Turn adjusts yaw or pitch by the fixed angular step. Yaw wraps into
// [0, 360); pitch clamps to [-90, 90] so the camera cannot flip over
// the poles. Turning always requests a redraw.
func (c *CameraState) Turn(command Command) {
	switch command {
	case CmdTurnLeft:
		c.Theta = wrapDegrees(c.Theta + EyeRotationDelta)
	case CmdTurnRight:
		c.Theta = wrapDegrees(c.Theta - EyeRotationDelta)
	case CmdLookUp:
		c.Phi = clampPitch(c.Phi + EyeRotationDelta)
	case CmdLookDown:
		c.Phi = clampPitch(c.Phi - EyeRotationDelta)
	}
	c.redraw = true
}

// Handle dispatches a single camera command. Returns false for
// commands the camera does not own (quit).
func (c *CameraState) Handle(command Command) bool {
	switch command {
	case CmdMoveForward, CmdMoveBack, CmdMoveLeft, CmdMoveRight:
		c.TryMove(c.MoveDelta(command))
		return true
	case CmdTurnLeft, CmdTurnRight, CmdLookUp, CmdLookDown:
		c.Turn(command)
		return true
	}
	return false
}

// LookTarget derives the look-at point from the current yaw and pitch.
// Recomputed each frame, never stored.
func (c *CameraState) LookTarget() mgl32.Vec3 {
	theta := float64(mgl32.DegToRad(c.Theta))
	phi := float64(mgl32.DegToRad(c.Phi))
	return mgl32.Vec3{
		c.Eye.X() - float32(math.Sin(theta)),
		c.Eye.Y() + float32(math.Sin(phi)),
		c.Eye.Z() - float32(math.Cos(theta)),
	}
}

func (c *CameraState) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.LookTarget(), mgl32.Vec3{0, 1, 0})
}

// TakeRedraw reports whether a redraw was requested since the last
// call, and clears the request.
func (c *CameraState) TakeRedraw() bool {
	r := c.redraw
	c.redraw = false
	return r
}

func wrapDegrees(deg float32) float32 {
	wrapped := float32(math.Mod(float64(deg), 360))
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped
}

func clampPitch(deg float32) float32 {
	if deg > 90 {
		return 90
	}
	if deg < -90 {
		return -90
	}
	return deg
}

// CameraModule installs the CameraState resource and the control
// system translating input commands into camera mutations.
type CameraModule struct{}

func (mod CameraModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewCameraState())
	app.UseSystem(
		System(cameraControlSystem).
			InStage(Update),
	)
}

func cameraControlSystem(input *Input, camera *CameraState, cmd *Commands) {
	for _, command := range input.Commands() {
		if command == CmdQuit {
			cmd.Quit()
			return
		}
		camera.Handle(command)
	}
}
