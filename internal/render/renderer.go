package render

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"voxelgame/internal/camera"
	"voxelgame/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/vertex.glsl
var mainVertexSource string

//go:embed shaders/fragment.glsl
var mainFragmentSource string

//go:embed shaders/flat_vertex.glsl
var flatVertexSource string

//go:embed shaders/flat_fragment.glsl
var flatFragmentSource string

const vertexStride = 10 * 4 // 10 float32 fields per world.Vertex

// GLContext is a zero-sized marker threaded through every GL-calling
// function's signature. It carries no data; its only purpose is to make
// "this must run on the locked OS thread holding the GL context" part of
// the function's type rather than a comment.
type GLContext struct{}

// NewGLContext returns the marker value for the calling goroutine. Call it
// once, from main, after runtime.LockOSThread and a successful gl.Init.
func NewGLContext() GLContext { return GLContext{} }

// Renderer owns the compiled shader programs and issues the per-frame
// opaque/transparent draw passes plus the block-selection highlight.
type Renderer struct {
	shaderProgram   uint32
	highlightShader uint32

	highlightVAO, highlightVBO uint32
}

// NewRenderer compiles the main and highlight shaders, embedded at build
// time rather than loaded from disk, since the engine ships as a single
// self-contained binary.
func NewRenderer(_ GLContext) (*Renderer, error) {
	shaderProgram, err := linkProgram(mainVertexSource, mainFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("compile main shader: %w", err)
	}

	highlightShader, err := linkProgram(flatVertexSource, flatFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("compile highlight shader: %w", err)
	}

	r := &Renderer{shaderProgram: shaderProgram, highlightShader: highlightShader}
	r.initHighlightMesh()
	return r, nil
}

// UploadChunkMesh sends a freshly built mesh's vertex/index data to the GPU,
// reusing the chunk's existing VAO/VBO/EBO if it has one so repeated
// rebuilds don't churn GL object handles. The caller (MeshQueue.DrainUploads)
// limits how many uploads run per frame and stops starting new ones once
// UploadBudget has elapsed.
func (r *Renderer) UploadChunkMesh(_ GLContext, c *world.Chunk, m *world.ChunkMesh) {
	if c.Mesh != nil && c.Mesh.VAO != 0 {
		m.VAO, m.VBO, m.EBO = c.Mesh.VAO, c.Mesh.VBO, c.Mesh.EBO
	} else {
		gl.GenVertexArrays(1, &m.VAO)
		gl.GenBuffers(1, &m.VBO)
		gl.GenBuffers(1, &m.EBO)
	}

	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexStride, gl.Ptr(m.Vertices), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, vertexStride, gl.PtrOffset(8*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(4, 1, gl.FLOAT, false, vertexStride, gl.PtrOffset(9*4))
	gl.EnableVertexAttribArray(4)

	gl.BindVertexArray(0)

	m.IsUploaded = true
	c.Mesh = m
}

// FrameParams carries the per-frame uniform values shared by both passes.
type FrameParams struct {
	Cam         *camera.Camera
	Atlas       *Atlas
	TimeSeconds float32
	WaterFPS    float32
	ChunkSize   int
	ChunkHeight int
}

// RenderOpaque draws every uploaded, in-frustum, non-empty chunk with depth
// write on, blending off, and culling on, sorted front-to-back.
func (r *Renderer) RenderOpaque(_ GLContext, chunks []*world.Chunk, p FrameParams) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)

	ordered := visibleSorted(chunks, p, false)
	r.drawChunks(ordered, p, 0)
}

// RenderTransparent draws the same candidate set with blending on and depth
// writes off, sorted back-to-front so overlapping water/glass composite
// correctly. Each mesh carries both opaque and transparent faces, so this
// pass draws the same chunks RenderOpaque did; the renderPass uniform tells
// the fragment shader which class to keep, letting the opaque faces that
// already wrote depth block the transparent ones behind them.
func (r *Renderer) RenderTransparent(_ GLContext, chunks []*world.Chunk, p FrameParams) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)

	ordered := visibleSorted(chunks, p, true)
	r.drawChunks(ordered, p, 1)

	gl.DepthMask(true)
	gl.Enable(gl.CULL_FACE)
}

func visibleSorted(chunks []*world.Chunk, p FrameParams, backToFront bool) []*world.Chunk {
	camPos := p.Cam.Position
	out := make([]*world.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if c.Mesh == nil || !c.Mesh.IsUploaded || len(c.Mesh.Indices) == 0 {
			continue
		}
		if !p.Cam.IsChunkVisible(c.Position.X, c.Position.Y, c.Position.Z, p.ChunkSize, p.ChunkHeight) {
			continue
		}
		out = append(out, c)
	}

	center := func(c *world.Chunk) float32 {
		cx := float32(c.Position.X*p.ChunkSize) + float32(p.ChunkSize)/2
		cy := float32(c.Position.Y*p.ChunkHeight) + float32(p.ChunkHeight)/2
		cz := float32(c.Position.Z*p.ChunkSize) + float32(p.ChunkSize)/2
		dx, dy, dz := cx-camPos.X(), cy-camPos.Y(), cz-camPos.Z()
		return dx*dx + dy*dy + dz*dz
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := center(out[i]), center(out[j])
		if backToFront {
			return di > dj
		}
		return di < dj
	})
	return out
}

func (r *Renderer) drawChunks(chunks []*world.Chunk, p FrameParams, renderPass float32) {
	gl.UseProgram(r.shaderProgram)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.Atlas.ID)
	gl.Uniform1i(gl.GetUniformLocation(r.shaderProgram, gl.Str("textureAtlas\x00")), 0)
	gl.Uniform1f(gl.GetUniformLocation(r.shaderProgram, gl.Str("renderPass\x00")), renderPass)

	view := p.Cam.GetViewMatrix()
	projection := p.Cam.GetProjectionMatrix()
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.shaderProgram, gl.Str("view\x00")), 1, false, &view[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.shaderProgram, gl.Str("projection\x00")), 1, false, &projection[0])

	lightDir := mgl32.Vec3{-0.2, -1.0, -0.3}
	gl.Uniform3fv(gl.GetUniformLocation(r.shaderProgram, gl.Str("lightDir\x00")), 1, &lightDir[0])
	gl.Uniform1f(gl.GetUniformLocation(r.shaderProgram, gl.Str("time\x00")), p.TimeSeconds)
	gl.Uniform1f(gl.GetUniformLocation(r.shaderProgram, gl.Str("waterFPS\x00")), p.WaterFPS)
	gl.Uniform1f(gl.GetUniformLocation(r.shaderProgram, gl.Str("atlasColumns\x00")), float32(AtlasColumns))
	gl.Uniform1f(gl.GetUniformLocation(r.shaderProgram, gl.Str("atlasRows\x00")), float32(AtlasRows))
	gl.Uniform1f(gl.GetUniformLocation(r.shaderProgram, gl.Str("waterFrameCount\x00")), float32(WaterFrameCount))

	modelLoc := gl.GetUniformLocation(r.shaderProgram, gl.Str("model\x00"))
	model := mgl32.Ident4()
	gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])

	for _, c := range chunks {
		gl.BindVertexArray(c.Mesh.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(c.Mesh.Indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)
}

// DrawBlockHighlight outlines the targeted block with 12 thin beams, used by
// the raycast-edit HUD feedback.
func (r *Renderer) DrawBlockHighlight(_ GLContext, pos mgl32.Vec3, cam *camera.Camera, color mgl32.Vec3) {
	gl.UseProgram(r.highlightShader)

	model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(1.001, 1.001, 1.001))
	view := cam.GetViewMatrix()
	proj := cam.GetProjectionMatrix()

	gl.UniformMatrix4fv(gl.GetUniformLocation(r.highlightShader, gl.Str("model\x00")), 1, false, &model[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.highlightShader, gl.Str("view\x00")), 1, false, &view[0])
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.highlightShader, gl.Str("projection\x00")), 1, false, &proj[0])
	gl.Uniform3fv(gl.GetUniformLocation(r.highlightShader, gl.Str("color\x00")), 1, &color[0])

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(r.highlightVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 432) // 12 beams * 36 vertices

	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (r *Renderer) initHighlightMesh() {
	var vertices []float32
	thickness := float32(0.02)

	addBeam := func(x, y, z, w, h, d float32) {
		x1, y1, z1 := x, y, z
		x2, y2, z2 := x+w, y+h, z+d
		cube := []float32{
			x1, y1, z2, x2, y1, z2, x2, y2, z2,
			x2, y2, z2, x1, y2, z2, x1, y1, z2,
			x2, y1, z1, x1, y1, z1, x1, y2, z1,
			x1, y2, z1, x2, y2, z1, x2, y1, z1,
			x1, y1, z1, x1, y1, z2, x1, y2, z2,
			x1, y2, z2, x1, y2, z1, x1, y1, z1,
			x2, y1, z2, x2, y1, z1, x2, y2, z1,
			x2, y2, z1, x2, y2, z2, x2, y1, z2,
			x1, y2, z2, x2, y2, z2, x2, y2, z1,
			x2, y2, z1, x1, y2, z1, x1, y2, z2,
			x1, y1, z1, x2, y1, z1, x2, y1, z2,
			x2, y1, z2, x1, y1, z2, x1, y1, z1,
		}
		vertices = append(vertices, cube...)
	}

	addBeam(0, 0, 0, thickness, 1, thickness)
	addBeam(1-thickness, 0, 0, thickness, 1, thickness)
	addBeam(1-thickness, 0, 1-thickness, thickness, 1, thickness)
	addBeam(0, 0, 1-thickness, thickness, 1, thickness)

	addBeam(0, 1-thickness, 0, 1, thickness, thickness)
	addBeam(0, 1-thickness, 1-thickness, 1, thickness, thickness)
	addBeam(0, 1-thickness, 0, thickness, thickness, 1)
	addBeam(1-thickness, 1-thickness, 0, thickness, thickness, 1)

	addBeam(0, 0, 0, 1, thickness, thickness)
	addBeam(0, 0, 1-thickness, 1, thickness, thickness)
	addBeam(0, 0, 0, thickness, thickness, 1)
	addBeam(1-thickness, 0, 0, thickness, thickness, 1)

	gl.GenVertexArrays(1, &r.highlightVAO)
	gl.GenBuffers(1, &r.highlightVBO)

	gl.BindVertexArray(r.highlightVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.highlightVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.BindVertexArray(0)
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("link program: %v", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("compile shader: %v", infoLog)
	}

	return shader, nil
}
