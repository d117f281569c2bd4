package frame

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// Encode the buffer as a binary PPM (P6) image.
func WritePPM(w io.Writer, buffer *Buffer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", buffer.Width(), buffer.Height()); err != nil {
		return err
	}
	_, err := w.Write(buffer.RGB())
	return err
}

// Encode the buffer as a PNG image.
func WritePNG(w io.Writer, buffer *Buffer) error {
	return png.Encode(w, buffer.RGBA())
}

// Generate a downscaled preview of the buffer. The preview height is derived
// from the frame aspect ratio.
func Preview(buffer *Buffer, previewW uint32) image.Image {
	return resize.Resize(uint(previewW), 0, buffer.RGBA(), resize.Bilinear)
}

// Encode a downscaled preview of the buffer as a PNG image.
func WritePreviewPNG(w io.Writer, buffer *Buffer, previewW uint32) error {
	return png.Encode(w, Preview(buffer, previewW))
}
