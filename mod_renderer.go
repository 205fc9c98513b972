package littleprince

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/frashpikass/Little-Prince-s-Planet/shaders"
)

// sceneUniform is the per-item shading block handed to scene.wgsl.
// Field order and 16-byte alignment must match the WGSL struct.
type sceneUniform struct {
	Mvp           mgl32.Mat4
	Model         mgl32.Mat4
	Eye           mgl32.Vec4
	LightPos      mgl32.Vec4
	LightDiffuse  mgl32.Vec4
	LightAmbient  mgl32.Vec4
	LightSpecular mgl32.Vec4
	MatAmbient    mgl32.Vec4
	MatDiffuse    mgl32.Vec4
	MatSpecular   mgl32.Vec4
	MatEmission   mgl32.Vec4
	Params        mgl32.Vec4
}

var sceneUniformSize = uint64(unsafe.Sizeof(sceneUniform{}))

type meshBuffers struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
}

type rendererState struct {
	logger Logger

	// One pipeline per depth/blend combination the scene needs:
	// opaque lit bodies, depth-read-only backdrops (sky, star) and
	// alpha-blended decorations.
	opaquePipeline  *wgpu.RenderPipeline
	overlayPipeline *wgpu.RenderPipeline
	blendPipeline   *wgpu.RenderPipeline

	sampler     *wgpu.Sampler
	depthView   *wgpu.TextureView
	depthWidth  int
	depthHeight int

	meshBuffers    map[AssetId]meshBuffers
	textureViews   map[AssetId]*wgpu.TextureView
	uniformBuffers []*wgpu.Buffer
}

type RendererModule struct{}

func (RendererModule) Install(app *App, cmd *Commands) {
	windowState := GetResource[WindowState](app)
	gpuState := createGpuState(windowState)
	rs := createRendererState(app.Logger(), gpuState)

	cmd.AddResources(gpuState, rs)
	app.UseSystem(System(renderSystem).InStage(Render))
}

func createRendererState(logger Logger, gpuState *GpuState) *rendererState {
	return &rendererState{
		logger: logger,
		opaquePipeline: createScenePipeline(
			"scene_opaque", shaders.SceneWGSL, Vertex{},
			pipelineVariant{depthWrite: true}, gpuState),
		overlayPipeline: createScenePipeline(
			"scene_overlay", shaders.SceneWGSL, Vertex{},
			pipelineVariant{}, gpuState),
		blendPipeline: createScenePipeline(
			"scene_blend", shaders.SceneWGSL, Vertex{},
			pipelineVariant{depthWrite: true, blend: true}, gpuState),
		sampler:      createLinearSampler(gpuState),
		meshBuffers:  map[AssetId]meshBuffers{},
		textureViews: map[AssetId]*wgpu.TextureView{},
	}
}

func (rs *rendererState) pipelineFor(item *DrawItem) *wgpu.RenderPipeline {
	switch {
	case item.Blend:
		return rs.blendPipeline
	case !item.DepthWrite:
		return rs.overlayPipeline
	default:
		return rs.opaquePipeline
	}
}

func (rs *rendererState) meshFor(id AssetId, assets *AssetServer, gpuState *GpuState) meshBuffers {
	if buffers, ok := rs.meshBuffers[id]; ok {
		return buffers
	}
	mesh := assets.Mesh(id)
	vertexBuf, indexBuf := createVertexIndexBuffers(mesh.vertices, mesh.indices, gpuState.device)
	buffers := meshBuffers{
		vertexBuffer: vertexBuf,
		indexBuffer:  indexBuf,
		indexCount:   uint32(len(mesh.indices)),
	}
	rs.meshBuffers[id] = buffers
	return buffers
}

func (rs *rendererState) textureFor(id AssetId, assets *AssetServer, gpuState *GpuState) *wgpu.TextureView {
	if view, ok := rs.textureViews[id]; ok {
		return view
	}
	view := createTextureFromAsset(assets.Texture(id), gpuState)
	rs.textureViews[id] = view
	return view
}

func (rs *rendererState) uniformBufferFor(index int, gpuState *GpuState) *wgpu.Buffer {
	for len(rs.uniformBuffers) <= index {
		buffer, err := gpuState.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Item Uniform Buffer",
			Size:  sceneUniformSize,
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			panic(err)
		}
		rs.uniformBuffers = append(rs.uniformBuffers, buffer)
	}
	return rs.uniformBuffers[index]
}

func (rs *rendererState) ensureDepthTexture(width, height int, gpuState *GpuState) {
	if rs.depthView != nil && rs.depthWidth == width && rs.depthHeight == height {
		return
	}
	if rs.depthView != nil {
		rs.depthView.Release()
	}
	rs.depthView = createDepthTexture(width, height, gpuState)
	rs.depthWidth = width
	rs.depthHeight = height
}

func makeItemUniform(item *DrawItem, viewProj mgl32.Mat4, eye mgl32.Vec3, light PointLight) sceneUniform {
	lit := float32(0)
	if item.Lit {
		lit = 1
	}
	alphaTest := float32(0)
	if item.Blend {
		alphaTest = 1
	}
	return sceneUniform{
		Mvp:           viewProj.Mul4(item.Model),
		Model:         item.Model,
		Eye:           eye.Vec4(1),
		LightPos:      light.Position.Vec4(1),
		LightDiffuse:  mgl32.Vec4(light.Diffuse),
		LightAmbient:  mgl32.Vec4(light.Ambient),
		LightSpecular: mgl32.Vec4(light.Specular),
		MatAmbient:    mgl32.Vec4(item.Material.Ambient),
		MatDiffuse:    mgl32.Vec4(item.Material.Diffuse),
		MatSpecular:   mgl32.Vec4(item.Material.Specular),
		MatEmission:   mgl32.Vec4(item.Material.Emission),
		Params:        mgl32.Vec4{item.Material.Shininess, lit, alphaTest, 0},
	}
}

// renders single frame
func renderSystem(
	windowState *WindowState,
	projection *Projection,
	camera *CameraState,
	queue *RenderQueue,
	assets *AssetServer,
	gpuState *GpuState,
	rs *rendererState,
) {
	if len(queue.Items) == 0 {
		return
	}

	width, height := windowState.WindowWidth, windowState.WindowHeight
	if width == 0 || height == 0 {
		// minimized window, nothing to present
		return
	}
	if uint32(width) != gpuState.surfaceConfig.Width || uint32(height) != gpuState.surfaceConfig.Height {
		gpuState.reconfigure(width, height)
	}
	rs.ensureDepthTexture(width, height, gpuState)

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		// transient surface loss, reconfigure and try next frame
		rs.logger.Errorf("skipping frame: %v", err)
		gpuState.reconfigure(width, height)
		return
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	viewProj := projection.Matrix().Mul4(camera.ViewMatrix())

	type preparedItem struct {
		pipeline  *wgpu.RenderPipeline
		bindGroup *wgpu.BindGroup
		mesh      meshBuffers
	}
	prepared := make([]preparedItem, 0, len(queue.Items))

	for i := range queue.Items {
		item := &queue.Items[i]
		pipeline := rs.pipelineFor(item)
		uniformBuffer := rs.uniformBufferFor(i, gpuState)

		uniform := makeItemUniform(item, viewProj, camera.Eye, queue.Light)
		err = gpuState.queue.WriteBuffer(uniformBuffer, 0, wgpu.ToBytes([]sceneUniform{uniform}))
		if err != nil {
			panic(err)
		}

		bindGroupLayout := pipeline.GetBindGroupLayout(0)
		bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Layout: bindGroupLayout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: uniformBuffer, Size: wgpu.WholeSize},
				{Binding: 1, TextureView: rs.textureFor(item.Texture, assets, gpuState)},
				{Binding: 2, Sampler: rs.sampler},
			},
		})
		bindGroupLayout.Release()
		if err != nil {
			panic(err)
		}
		defer bindGroup.Release()

		prepared = append(prepared, preparedItem{
			pipeline:  pipeline,
			bindGroup: bindGroup,
			mesh:      rs.meshFor(item.Mesh, assets, gpuState),
		})
	}

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 1.0, G: 1.0, B: 1.0, A: 1.0},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rs.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
	defer renderPass.Release()

	for _, item := range prepared {
		renderPass.SetPipeline(item.pipeline)
		renderPass.SetBindGroup(0, item.bindGroup, nil)
		renderPass.SetVertexBuffer(0, item.mesh.vertexBuffer, 0, wgpu.WholeSize)
		renderPass.SetIndexBuffer(item.mesh.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		renderPass.DrawIndexed(item.mesh.indexCount, 1, 0, 0, 0)
	}

	err = renderPass.End()
	if err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}
