package littleprince

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawItem is one textured mesh instance queued for the current frame.
type DrawItem struct {
	Mesh       AssetId
	Texture    AssetId
	Material   Material
	Model      mgl32.Mat4
	Lit        bool
	DepthWrite bool
	Blend      bool
}

// RenderQueue carries the frame's draw list in submission order plus
// the light it should be shaded with. Blended items rely on the order,
// so the renderer must not sort it.
type RenderQueue struct {
	Items []DrawItem
	Light PointLight
}

// Scene owns the diorama's assets and rebuilds the render queue from
// the shared rotation clock every frame.
type Scene struct {
	skyMesh       AssetId
	starMesh      AssetId
	planetMesh    AssetId
	satelliteMesh AssetId
	princeMesh    AssetId
	roseMesh      AssetId
	baobabMesh    AssetId
	vaseBowlMesh  AssetId
	vaseNeckMesh  AssetId

	skyTexture       AssetId
	starTexture      AssetId
	planetTexture    AssetId
	satelliteTexture AssetId
	princeTexture    AssetId
	roseTexture      AssetId
	baobabTexture    AssetId
	glassTexture     AssetId
}

type SceneModule struct {
	// TextureDir is the directory holding the scene's image files.
	// Empty means "textures" next to the executable's working dir.
	TextureDir string
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	dir := m.TextureDir
	if dir == "" {
		dir = "textures"
	}

	assets := GetResource[AssetServer](app)
	tex := func(name string, hasAlpha bool) AssetId {
		return assets.LoadTexture(filepath.Join(dir, name), hasAlpha)
	}
	mesh := func(vertices []Vertex, indices []uint16) AssetId {
		return assets.LoadMesh(vertices, indices)
	}

	scene := &Scene{
		skyMesh:       mesh(CreateSphereMesh(SkyRadius, 64, 64)),
		starMesh:      mesh(CreateSphereMesh(PlanetRadius, 32, 32)),
		planetMesh:    mesh(CreateSphereMesh(PlanetRadius, 64, 64)),
		satelliteMesh: mesh(CreateSphereMesh(SatelliteRadius, 64, 64)),
		princeMesh:    mesh(CreateQuadFanMesh(0.7, 1.2, 1)),
		roseMesh:      mesh(CreateQuadFanMesh(0.5, 0.8, 10)),
		baobabMesh:    mesh(CreateQuadFanMesh(2, 3, 4)),
		vaseBowlMesh:  mesh(CreateTaperedCylinderMesh(0.5, 0.5, 0.6, 64)),
		vaseNeckMesh:  mesh(CreateTaperedCylinderMesh(0.5, 0.5/7, 0.4, 32)),

		skyTexture:       tex("sky.png", false),
		starTexture:      tex("star.jpg", false),
		planetTexture:    tex("moon.png", false),
		satelliteTexture: tex("earth.jpg", false),
		princeTexture:    tex("lp.png", true),
		roseTexture:      tex("rose_nocup.png", true),
		baobabTexture:    tex("baobab.png", true),
		glassTexture:     tex("glass.png", true),
	}

	cmd.AddResources(scene, &RenderQueue{Light: StarLight()})
	app.UseSystem(System(sceneFrameSystem).InStage(PreRender))
}

func sceneFrameSystem(scene *Scene, clock *RotationClock, queue *RenderQueue) {
	scene.BuildFrame(clock.Rot, queue)
}

// decorationHeight keeps the flat decorations slightly sunk into the
// planet surface so their baselines never float.
const decorationHeight = PlanetRadius - 0.1

// BuildFrame recomputes every body's model matrix for rotation angle
// rot (in degrees) and rewrites the queue in back-to-front submission
// order. The queue's light position follows the star.
func (scene *Scene) BuildFrame(rot float32, queue *RenderQueue) {
	queue.Items = queue.Items[:0]

	// The sky dome spins slowly around a slightly bent axis. It is
	// drawn first, unlit and without touching the depth buffer, so
	// everything else paints over it.
	skyModel := mgl32.HomogRotate3DX(mgl32.DegToRad(90)).
		Mul4(mgl32.HomogRotate3D(
			mgl32.DegToRad(SkyRotationFactor*rot),
			mgl32.Vec3{0, 0.1, 1}.Normalize(),
		))
	queue.Items = append(queue.Items, DrawItem{
		Mesh:     scene.skyMesh,
		Texture:  scene.skyTexture,
		Material: DullMaterial(),
		Model:    skyModel,
	})

	// The star orbits the sky centre opposite to the dome's spin and
	// carries the scene's only light at its core.
	starPlacement := PositionOnSphere(SkyCenter, -SkyRotationFactor*rot, 0, SkyRadius*StarDistance, 0)
	queue.Light.Position = mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, starPlacement)
	queue.Items = append(queue.Items, DrawItem{
		Mesh:     scene.starMesh,
		Texture:  scene.starTexture,
		Material: GlowingMaterial(),
		Model:    starPlacement.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(2 * rot))),
	})

	// Satellite orbit: tilted twice (planet tilt, then orbit tilt),
	// retrograde around the planet, spinning on its own axis.
	tilt := mgl32.HomogRotate3DZ(mgl32.DegToRad(PlanetTilt))
	satelliteModel := tilt.
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(SatelliteOrbitTilt))).
		Mul4(PositionOnSphere(SkyCenter, 0, SatelliteSpeed*rot, SatelliteOrbitRadius, 0)).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rot)))
	queue.Items = append(queue.Items, DrawItem{
		Mesh:       scene.satelliteMesh,
		Texture:    scene.satelliteTexture,
		Material:   PlanetMaterial(),
		Model:      satelliteModel,
		Lit:        true,
		DepthWrite: true,
	})

	// Planet frame: tilt, stand the sphere's polar axis upright, then
	// spin. Decorations reuse the frame so they ride the surface.
	planetFrame := tilt.
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rot)))
	queue.Items = append(queue.Items, DrawItem{
		Mesh:       scene.planetMesh,
		Texture:    scene.planetTexture,
		Material:   PlanetMaterial(),
		Model:      planetFrame,
		Lit:        true,
		DepthWrite: true,
	})

	decoration := func(mesh, texture AssetId, material Material, model mgl32.Mat4) {
		queue.Items = append(queue.Items, DrawItem{
			Mesh:       mesh,
			Texture:    texture,
			Material:   material,
			Model:      model,
			Lit:        true,
			DepthWrite: true,
			Blend:      true,
		})
	}

	placeOnPlanet := func(longitude, latitude float32) mgl32.Mat4 {
		return planetFrame.Mul4(PositionOnSphere(SkyCenter, longitude, latitude, decorationHeight, 0))
	}

	decoration(scene.princeMesh, scene.princeTexture, ShinyMaterial(), placeOnPlanet(180, 0))
	decoration(scene.roseMesh, scene.roseTexture, DullMaterial(), placeOnPlanet(60, 30))

	// The vase wraps the rose: a straight bowl topped by a tapering
	// neck stacked at three quarters of the rose's height.
	vaseBase := placeOnPlanet(60, 30).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-90)))
	decoration(scene.vaseBowlMesh, scene.glassTexture, ShinyMaterial(), vaseBase)
	decoration(scene.vaseNeckMesh, scene.glassTexture, ShinyMaterial(),
		vaseBase.Mul4(mgl32.Translate3D(0, 0, 0.6)))

	decoration(scene.baobabMesh, scene.baobabTexture, DullMaterial(), placeOnPlanet(-60, -30))
}
