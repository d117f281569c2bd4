// Package frame provides the shared color buffer that tracers render into
// plus the encoders and publishers that turn it into image artifacts.
package frame

import (
	"image"

	"github.com/achilleasa/rigel/types"
)

// Buffer stores one linear RGB color per frame pixel in row-major,
// top-to-bottom order. Color channels are unbounded; tone-mapping to 8-bit
// output happens when the buffer is encoded.
type Buffer struct {
	width  uint32
	height uint32
	pix    []float32
}

// Create a new zeroed frame buffer.
func NewBuffer(width, height uint32) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*3),
	}
}

func (b *Buffer) Width() uint32 {
	return b.width
}

func (b *Buffer) Height() uint32 {
	return b.height
}

// Get the raw channel storage. Tracers write their assigned rows directly
// into this slice.
func (b *Buffer) Pix() []float32 {
	return b.pix
}

// Get the linear color of pixel (x, y).
func (b *Buffer) At(x, y uint32) types.Vec3 {
	offset := (y*b.width + x) * 3
	return types.XYZ(b.pix[offset], b.pix[offset+1], b.pix[offset+2])
}

// Set the linear color of pixel (x, y).
func (b *Buffer) Set(x, y uint32, color types.Vec3) {
	offset := (y*b.width + x) * 3
	b.pix[offset] = color[0]
	b.pix[offset+1] = color[1]
	b.pix[offset+2] = color[2]
}

// Tone-map the buffer into 8-bit RGB bytes. Overbright pixels are rescaled
// by their largest channel so that hue is preserved instead of clipping each
// channel independently.
func (b *Buffer) RGB() []byte {
	out := make([]byte, b.width*b.height*3)
	for pix := uint32(0); pix < b.width*b.height; pix++ {
		offset := pix * 3
		scale := float32(1.0)
		if m := types.XYZ(b.pix[offset], b.pix[offset+1], b.pix[offset+2]).MaxComponent(); m > 1 {
			scale = 1.0 / m
		}
		out[offset] = uint8(255 * b.pix[offset] * scale)
		out[offset+1] = uint8(255 * b.pix[offset+1] * scale)
		out[offset+2] = uint8(255 * b.pix[offset+2] * scale)
	}
	return out
}

// Tone-map the buffer into an RGBA image.
func (b *Buffer) RGBA() *image.RGBA {
	rgb := b.RGB()
	img := image.NewRGBA(image.Rect(0, 0, int(b.width), int(b.height)))
	for pix := 0; pix < int(b.width*b.height); pix++ {
		img.Pix[pix*4] = rgb[pix*3]
		img.Pix[pix*4+1] = rgb[pix*3+1]
		img.Pix[pix*4+2] = rgb[pix*3+2]
		img.Pix[pix*4+3] = 0xff
	}
	return img
}
