package littleprince

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

type AssetId string

// maxTextureDim caps decoded textures to a size every desktop GPU
// accepts. Larger images are downscaled on load.
const maxTextureDim = 4096

type AssetServer struct {
	meshes   map[AssetId]MeshAsset
	textures map[AssetId]TextureAsset
}

type AssetServerModule struct{}

type MeshAsset struct {
	vertices []Vertex
	indices  []uint16
}

type TextureAsset struct {
	texels   []uint8
	width    uint32
	height   uint32
	hasAlpha bool
}

func (server AssetServer) LoadMesh(vertices []Vertex, indices []uint16) AssetId {
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		vertices: vertices,
		indices:  indices,
	}
	return id
}

// LoadTexture decodes a PNG or JPEG file into RGBA texels. When
// hasAlpha is false the alpha channel is forced opaque so stray
// transparency in the source image cannot punch holes in solid bodies.
func (server AssetServer) LoadTexture(filename string, hasAlpha bool) AssetId {
	file, err := os.Open(filename)
	if err != nil {
		panic(fmt.Errorf("texture %s: %w", filename, err))
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		panic(fmt.Errorf("texture %s: %w", filename, err))
	}

	rgba := toRGBA(img)
	rgba = clampTextureSize(rgba)

	if !hasAlpha {
		pix := rgba.Pix
		for i := 3; i < len(pix); i += 4 {
			pix[i] = 0xFF
		}
	}

	bounds := rgba.Bounds()
	id := makeAssetId()
	server.textures[id] = TextureAsset{
		texels:   rgba.Pix,
		width:    uint32(bounds.Dx()),
		height:   uint32(bounds.Dy()),
		hasAlpha: hasAlpha,
	}
	return id
}

func (server AssetServer) Mesh(id AssetId) MeshAsset {
	mesh, ok := server.meshes[id]
	if !ok {
		panic(fmt.Sprintf("unknown mesh asset %s", id))
	}
	return mesh
}

func (server AssetServer) Texture(id AssetId) TextureAsset {
	tx, ok := server.textures[id]
	if !ok {
		panic(fmt.Sprintf("unknown texture asset %s", id))
	}
	return tx
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	xdraw.Draw(rgba, bounds, img, bounds.Min, xdraw.Src)
	return rgba
}

func clampTextureSize(rgba *image.RGBA) *image.RGBA {
	bounds := rgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxTextureDim && h <= maxTextureDim {
		return rgba
	}

	scale := float64(maxTextureDim) / float64(w)
	if h > w {
		scale = float64(maxTextureDim) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)

	scaled := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), rgba, bounds, xdraw.Src, nil)
	return scaled
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(&AssetServer{
		meshes:   make(map[AssetId]MeshAsset),
		textures: make(map[AssetId]TextureAsset),
	})
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
