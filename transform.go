package littleprince

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SphericalPlacement describes where on (or around) a sphere a local
// reference frame sits. Height is measured from Center, not from the
// sphere's surface; Longitude and Latitude are in degrees. Placements
// are recomputed fresh each frame and never stored.
type SphericalPlacement struct {
	Center      mgl32.Vec3
	Longitude   float32
	Latitude    float32
	Height      float32
	Orientation float32
}

func (p SphericalPlacement) Matrix() mgl32.Mat4 {
	return PositionOnSphere(p.Center, p.Longitude, p.Latitude, p.Height, p.Orientation)
}

// PositionOnSphere builds the transform that places a local frame over a
// destination point on a sphere. The frame's y axis equals the outward
// normal of the sphere at that point; orientation rotates the frame
// around that normal, so the facing of a billboard is controllable
// independently of where it sits.
//
// The −90° offsets align the equatorial longitude/latitude convention
// with the rotation axes: longitude 90, latitude 90 is straight up.
// Angles are unbounded; the underlying rotations are periodic.
func PositionOnSphere(center mgl32.Vec3, longitude, latitude, height, orientation float32) mgl32.Mat4 {
	m := mgl32.Translate3D(center.X(), center.Y(), center.Z())

	// Rotate around y by the longitude, then around z by the latitude.
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(longitude - 90)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(latitude - 90)))

	// Climb the (now rotated) vertical axis up to the desired height.
	m = m.Mul4(mgl32.Translate3D(0, height, 0))

	// Final spin around the local normal.
	return m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(orientation)))
}
