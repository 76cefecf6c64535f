package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // register the PNG decoder
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Atlas is the single GPU texture backing every block face: a static
// AtlasColumns x AtlasRows grid plus a vertical strip of WaterFrameCount
// animated water tiles appended below it.
type Atlas struct {
	ID uint32

	width, height int
}

// LoadAtlas decodes the static tile grid from atlasPath and the animated
// water strip from waterStripPath, composes them into one RGBA canvas (the
// strip appended as extra rows below the grid), and uploads it with the
// nearest-neighbor, repeat-wrap parameters a block atlas needs.
func LoadAtlas(_ GLContext, atlasPath, waterStripPath string) (*Atlas, error) {
	grid, err := decodePNG(atlasPath)
	if err != nil {
		return nil, fmt.Errorf("load atlas: %w", err)
	}
	strip, err := decodePNG(waterStripPath)
	if err != nil {
		return nil, fmt.Errorf("load water strip: %w", err)
	}

	gridW := AtlasColumns * TileSize
	gridH := AtlasRows * TileSize
	canvas := image.NewRGBA(image.Rect(0, 0, gridW, gridH+WaterFrameCount*TileSize))
	draw.Draw(canvas, image.Rect(0, 0, gridW, gridH), grid, image.Point{}, draw.Src)

	for frame := 0; frame < WaterFrameCount; frame++ {
		src := image.Rect(0, frame*TileSize, TileSize, (frame+1)*TileSize)
		dst := image.Rect(0, gridH+frame*TileSize, TileSize, gridH+(frame+1)*TileSize)
		draw.Draw(canvas, dst, strip, src.Min, draw.Src)
	}

	return uploadAtlas(canvas)
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func uploadAtlas(img *image.RGBA) (*Atlas, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	// Nearest filtering keeps block edges crisp instead of blurring across
	// tiles; repeat wrap avoids seams where a UV samples past a tile's edge.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	size := img.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)

	return &Atlas{ID: tex, width: size.X, height: size.Y}, nil
}

// WaterFrameUV returns the atlas-space rect of the given animated water
// frame, wrapping modulo WaterFrameCount.
func (a *Atlas) WaterFrameUV(frame int) (u0, v0, du, dv float32) {
	frame = ((frame % WaterFrameCount) + WaterFrameCount) % WaterFrameCount
	gridH := float32(AtlasRows * TileSize)
	du = float32(TileSize) / float32(a.width)
	dv = float32(TileSize) / float32(a.height)
	v0 = (gridH + float32(frame*TileSize)) / float32(a.height)
	return 0, v0, du, dv
}
