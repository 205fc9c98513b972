package littleprince

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene constants. Everything here is compiled in; there is no runtime
// configuration surface.
const (
	// DistanceLimit bounds the far plane of the projection.
	DistanceLimit float32 = 100

	// SkyRadius is the radius of the sky dome.
	SkyRadius float32 = DistanceLimit / 3

	// SkyRotationFactor is a multiplier on the rotation clock that sets
	// how fast the sky dome turns on its axis.
	SkyRotationFactor float32 = 0.1

	// StarDistance is a multiplier for SkyRadius that sets how far the
	// star orbits from the sky centre.
	StarDistance float32 = 0.7

	// SafetyRadius bounds the observer: the eye can never move farther
	// than this from the sky centre.
	SafetyRadius float32 = SkyRadius * 2 / 3

	PlanetRadius       float32 = 1.3
	PlanetTilt         float32 = 25
	SatelliteOrbitTilt float32 = 25
	SatelliteRadius    float32 = 0.3
	// SatelliteOrbitRadius is measured from the planet centre.
	SatelliteOrbitRadius float32 = 4
	// SatelliteSpeed multiplies the rotation clock; negative for a
	// retrograde orbit.
	SatelliteSpeed float32 = -3

	// DeltaRot is the per-frame increment of the rotation clock.
	DeltaRot float32 = 0.05

	// EyeRotationDelta is the grain of camera turning, in degrees.
	EyeRotationDelta float32 = 5

	WindowWidth  = 800
	WindowHeight = 600

	ProjectionFovy float32 = 45.0
	ProjectionNear float32 = 0.1
	ProjectionFar  float32 = 5 * DistanceLimit
)

// SkyCenter is the fixed world centre everything is placed around.
var SkyCenter = mgl32.Vec3{0, 0, 0}

// EyeStart is the initial camera position.
var EyeStart = mgl32.Vec3{0, 0, 8}
