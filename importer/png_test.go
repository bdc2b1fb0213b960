// Copyright © 2024 Galvanized Logic Inc.

package importer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestParsePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 1, color.RGBA{0, 255, 0, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	tex, err := ParsePNG("swatch.png", &buf)
	if err != nil {
		t.Fatalf("ParsePNG: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 || !tex.HasPixels {
		t.Fatalf("tex = %+v, want 2x2 with pixels", tex)
	}
	if len(tex.Pixels) != 2*2*4 {
		t.Errorf("pixels len = %d, want 16", len(tex.Pixels))
	}
	if tex.Pixels[0] != 255 || tex.Pixels[1] != 0 {
		t.Errorf("pixel 0 = %v, want red", tex.Pixels[:4])
	}
}

func TestParsePNGBadData(t *testing.T) {
	if _, err := ParsePNG("bad.png", bytes.NewReader([]byte("not a png"))); err == nil {
		t.Fatal("expected an error for invalid PNG data")
	}
}
