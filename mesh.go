package littleprince

import (
	"math"
)

// Vertex is the single vertex layout shared by every mesh in the scene.
// Tagged fields drive the GPU vertex buffer layout via reflection.
type Vertex struct {
	position [3]float32 `prince:"layout" location:"0" format:"float3"`
	normal   [3]float32 `prince:"layout" location:"1" format:"float3"`
	uv       [2]float32 `prince:"layout" location:"2" format:"float2"`
}

// CreateSphereMesh builds a UV sphere with the z axis as polar axis,
// normals pointing outward and texture coordinates wrapping once around
// the equator. Callers that want a y-up sphere rotate it in the model
// matrix.
func CreateSphereMesh(radius float32, slices int, stacks int) ([]Vertex, []uint16) {
	if slices < 3 || stacks < 2 {
		panic("sphere needs at least 3 slices and 2 stacks")
	}

	var vertices []Vertex
	for stack := 0; stack <= stacks; stack++ {
		// phi runs from the +z pole down to the -z pole
		phi := math.Pi * float64(stack) / float64(stacks)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

		for slice := 0; slice <= slices; slice++ {
			theta := 2.0 * math.Pi * float64(slice) / float64(slices)
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

			nx := float32(sinPhi * cosTheta)
			ny := float32(sinPhi * sinTheta)
			nz := float32(cosPhi)

			vertices = append(vertices, Vertex{
				position: [3]float32{radius * nx, radius * ny, radius * nz},
				normal:   [3]float32{nx, ny, nz},
				uv: [2]float32{
					float32(slice) / float32(slices),
					float32(stack) / float32(stacks),
				},
			})
		}
	}

	var indices []uint16
	stride := slices + 1
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			i0 := uint16(stack*stride + slice)
			i1 := i0 + 1
			i2 := i0 + uint16(stride)
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}
	return vertices, indices
}

// CreateTaperedCylinderMesh builds an open-ended cylinder along +z from
// z=0 to z=height, linearly tapering from baseRadius to topRadius.
// Normals account for the taper slope.
func CreateTaperedCylinderMesh(baseRadius, topRadius, height float32, slices int) ([]Vertex, []uint16) {
	if slices < 3 {
		panic("cylinder needs at least 3 slices")
	}

	// slope of the side wall in the radial/axial plane
	taper := float64(baseRadius - topRadius)
	sideLen := math.Sqrt(float64(height)*float64(height) + taper*taper)
	nr := float64(height) / sideLen
	nz := taper / sideLen

	var vertices []Vertex
	for ring := 0; ring <= 1; ring++ {
		r := baseRadius
		z := float32(0)
		if ring == 1 {
			r = topRadius
			z = height
		}
		for slice := 0; slice <= slices; slice++ {
			theta := 2.0 * math.Pi * float64(slice) / float64(slices)
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

			vertices = append(vertices, Vertex{
				position: [3]float32{r * float32(cosTheta), r * float32(sinTheta), z},
				normal: [3]float32{
					float32(nr * cosTheta),
					float32(nr * sinTheta),
					float32(nz),
				},
				uv: [2]float32{float32(slice) / float32(slices), float32(ring)},
			})
		}
	}

	var indices []uint16
	stride := uint16(slices + 1)
	for slice := 0; slice < slices; slice++ {
		i0 := uint16(slice)
		i1 := i0 + 1
		i2 := i0 + stride
		i3 := i2 + 1
		indices = append(indices, i0, i1, i2, i1, i3, i2)
	}
	return vertices, indices
}

// CreateQuadFanMesh builds `faces` upright quads of the given size,
// each rotated about the y axis by a share of a half turn so the fan
// reads as a rounded silhouette from any direction. Quads span
// x in [-width/2, width/2] and y in [0, height], with a +z normal.
// Rendered without backface culling they are visible from both sides.
func CreateQuadFanMesh(width, height float32, faces int) ([]Vertex, []uint16) {
	if faces < 1 {
		panic("quad fan needs at least 1 face")
	}

	halfW := float64(width) * 0.5
	var vertices []Vertex
	var indices []uint16

	for face := 0; face < faces; face++ {
		angle := math.Pi * float64(face) / float64(faces)
		sinA, cosA := math.Sin(angle), math.Cos(angle)

		// corners before rotation: (-w/2,0,0) (w/2,0,0) (w/2,h,0) (-w/2,h,0)
		corners := [4][2]float64{{-halfW, 0}, {halfW, 0}, {halfW, float64(height)}, {-halfW, float64(height)}}
		uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
		normal := [3]float32{float32(sinA), 0, float32(cosA)}

		base := uint16(len(vertices))
		for c := 0; c < 4; c++ {
			x, y := corners[c][0], corners[c][1]
			vertices = append(vertices, Vertex{
				position: [3]float32{float32(x * cosA), float32(y), float32(-x * sinA)},
				normal:   normal,
				uv:       uvs[c],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
