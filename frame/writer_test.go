package frame

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/achilleasa/rigel/types"
)

func TestWritePPM(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Set(0, 0, types.XYZ(1, 1, 1))

	var buf bytes.Buffer
	if err := WritePPM(&buf, b); err != nil {
		t.Fatalf("ppm encoding failed: %v", err)
	}

	expHeader := "P6\n4 2\n255\n"
	out := buf.Bytes()
	if got := string(out[:len(expHeader)]); got != expHeader {
		t.Fatalf("expected header %q; got %q", expHeader, got)
	}
	if exp, got := len(expHeader)+4*2*3, len(out); got != exp {
		t.Fatalf("expected encoded size to be %d bytes; got %d", exp, got)
	}
	if out[len(expHeader)] != 255 {
		t.Fatalf("expected first pixel byte to be 255; got %d", out[len(expHeader)])
	}
}

func TestWritePNG(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Set(2, 1, types.XYZ(0, 1, 0))

	var buf bytes.Buffer
	if err := WritePNG(&buf, b); err != nil {
		t.Fatalf("png encoding failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("could not decode png output: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("expected a 3x2 image; got %v", img.Bounds())
	}

	_, g, _, _ := img.At(2, 1).RGBA()
	if g>>8 != 255 {
		t.Fatalf("expected pixel (2, 1) to be green; got %v", img.At(2, 1))
	}
}

func TestPreview(t *testing.T) {
	b := NewBuffer(8, 4)

	img := Preview(b, 4)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("expected the preview to keep the frame aspect ratio; got %v", img.Bounds())
	}
}
