package ui

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// hitColor and missColor are the crosshair's two states: white when the
// player's raycast is currently resting on an editable block, dimmed gray
// when nothing is in reach (mirrors most block games' aim feedback).
var (
	hitColor  = mgl32.Vec3{1.0, 1.0, 1.0}
	missColor = mgl32.Vec3{0.5, 0.5, 0.5}
)

type Crosshair struct {
	vao   uint32
	vbo   uint32
	color mgl32.Vec3
	size  float32

	screenWidth  int
	screenHeight int
}

func NewCrosshair(screenWidth, screenHeight int) *Crosshair {
	return &Crosshair{
		color:        missColor,
		size:         10.0,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

func (c *Crosshair) Init() error {
	// Generate VAO and VBO
	gl.GenVertexArrays(1, &c.vao)
	gl.GenBuffers(1, &c.vbo)

	// Generate geometry
	c.generateGeometry()

	return nil
}

func (c *Crosshair) generateGeometry() {
	// Calculate center of screen
	centerX := float32(c.screenWidth) / 2.0
	centerY := float32(c.screenHeight) / 2.0

	// Create crosshair lines (+ shape)
	vertices := []float32{
		// Horizontal line
		centerX - c.size, centerY, c.color[0], c.color[1], c.color[2],
		centerX + c.size, centerY, c.color[0], c.color[1], c.color[2],
		// Vertical line
		centerX, centerY - c.size, c.color[0], c.color[1], c.color[2],
		centerX, centerY + c.size, c.color[0], c.color[1], c.color[2],
	}

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position attribute (2D)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Color attribute
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (c *Crosshair) Update(state interface{}) {
	// If screen size changed, regenerate
	if newSize, ok := state.(*ScreenSize); ok {
		if newSize.Width != c.screenWidth || newSize.Height != c.screenHeight {
			c.screenWidth = newSize.Width
			c.screenHeight = newSize.Height
			c.generateGeometry()
		}
	}
}

// SetTargetHit switches the crosshair between its hit and miss colors,
// driven by the player's raycast result each frame.
func (c *Crosshair) SetTargetHit(hit bool) {
	next := missColor
	if hit {
		next = hitColor
	}
	if next != c.color {
		c.SetColor(next)
	}
}

func (c *Crosshair) Draw(shaderProgram uint32, projection mgl32.Mat4) {
	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
}

func (c *Crosshair) Cleanup() {
	gl.DeleteVertexArrays(1, &c.vao)
	gl.DeleteBuffers(1, &c.vbo)
}

func (c *Crosshair) SetColor(color mgl32.Vec3) {
	c.color = color
	c.generateGeometry()
}

func (c *Crosshair) SetSize(size float32) {
	c.size = size
	c.generateGeometry()
}
