package littleprince

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const vecEpsilon = 1e-5

func assertVec3Near(t *testing.T, expected, actual mgl32.Vec3, msg string) {
	t.Helper()
	if !expected.ApproxEqualThreshold(actual, vecEpsilon) {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func TestPositionOnSphere_TopOfSphereIsPureLift(t *testing.T) {
	// Longitude 90, latitude 90 cancels both -90 offsets: the frame
	// just climbs straight up the y axis.
	m := PositionOnSphere(mgl32.Vec3{0, 0, 0}, 90, 90, 5, 0)

	origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, m)
	assertVec3Near(t, mgl32.Vec3{0, 5, 0}, origin, "frame origin")

	up := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, m)
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, up, "frame up axis")
}

func TestPositionOnSphere_DistanceEqualsHeight(t *testing.T) {
	center := mgl32.Vec3{1, -2, 3}
	for _, tc := range []struct {
		longitude, latitude, height float32
	}{
		{0, 0, 1},
		{45, 30, 2.5},
		{180, -60, 10},
		{-90, 90, 0.25},
		{720, 45, 3},
	} {
		m := PositionOnSphere(center, tc.longitude, tc.latitude, tc.height, 0)
		origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, m)
		dist := origin.Sub(center).Len()
		if mgl32.Abs(dist-tc.height) > vecEpsilon {
			t.Errorf("placement (%v, %v, %v): distance from center = %v, want %v",
				tc.longitude, tc.latitude, tc.height, dist, tc.height)
		}
	}
}

func TestPositionOnSphere_UpAxisIsOutwardNormal(t *testing.T) {
	center := mgl32.Vec3{0, 0, 0}
	for _, tc := range []struct {
		longitude, latitude float32
	}{
		{180, 0},
		{60, 30},
		{-60, -30},
		{0, 0},
	} {
		m := PositionOnSphere(center, tc.longitude, tc.latitude, 2, 0)
		origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, m)
		up := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, m)

		outward := origin.Sub(center).Normalize()
		assertVec3Near(t, outward, up,
			"up axis should be the outward surface normal")
	}
}

func TestPositionOnSphere_FrameStaysOrthonormal(t *testing.T) {
	m := PositionOnSphere(mgl32.Vec3{2, 0, -1}, 33, -70, 4, 120)

	x := mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, m)
	y := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, m)
	z := mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, m)

	for name, axis := range map[string]mgl32.Vec3{"x": x, "y": y, "z": z} {
		if mgl32.Abs(axis.Len()-1) > vecEpsilon {
			t.Errorf("axis %s not unit length: %v", name, axis.Len())
		}
	}
	if mgl32.Abs(x.Dot(y)) > vecEpsilon || mgl32.Abs(y.Dot(z)) > vecEpsilon || mgl32.Abs(x.Dot(z)) > vecEpsilon {
		t.Errorf("axes not orthogonal: x·y=%v y·z=%v x·z=%v", x.Dot(y), y.Dot(z), x.Dot(z))
	}
}

func TestPositionOnSphere_OrientationSpinsAroundNormal(t *testing.T) {
	plain := PositionOnSphere(mgl32.Vec3{0, 0, 0}, 60, 30, 2, 0)
	turned := PositionOnSphere(mgl32.Vec3{0, 0, 0}, 60, 30, 2, 90)

	// Same origin and normal, different tangent directions.
	assertVec3Near(t,
		mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, plain),
		mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, turned),
		"orientation must not move the frame origin")
	assertVec3Near(t,
		mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, plain),
		mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, turned),
		"orientation must not change the normal")

	plainX := mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, plain)
	turnedX := mgl32.TransformNormal(mgl32.Vec3{1, 0, 0}, turned)
	if plainX.ApproxEqualThreshold(turnedX, vecEpsilon) {
		t.Errorf("orientation should rotate the tangent frame")
	}
}

func TestSphericalPlacement_MatrixMatchesFreeFunction(t *testing.T) {
	p := SphericalPlacement{
		Center:      mgl32.Vec3{1, 2, 3},
		Longitude:   40,
		Latitude:    -20,
		Height:      6,
		Orientation: 15,
	}
	want := PositionOnSphere(p.Center, p.Longitude, p.Latitude, p.Height, p.Orientation)
	if p.Matrix() != want {
		t.Errorf("SphericalPlacement.Matrix should delegate to PositionOnSphere")
	}
}
