// Copyright © 2024 Galvanized Logic Inc.

package importer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestOBJImporterImport(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 0, A: 255})
		}
	}
	pngFile, err := os.Create(filepath.Join(dir, "brick.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(pngFile, img); err != nil {
		t.Fatal(err)
	}
	pngFile.Close()

	mtl := "newmtl brick\nmap_Kd brick.png\n"
	if err := os.WriteFile(filepath.Join(dir, "cube.mtl"), []byte(mtl), 0o644); err != nil {
		t.Fatal(err)
	}

	obj := "mtllib cube.mtl\nv 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nusemtl brick\nf 1 2 3 4\n"
	if err := os.WriteFile(filepath.Join(dir, "cube.obj"), []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := OBJImporter{}.Import(filepath.Join(dir, "cube.obj"), 1)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(mesh.Materials) != 1 {
		t.Fatalf("materials = %d, want 1", len(mesh.Materials))
	}
	if mesh.Materials[0].Texture == nil {
		t.Fatal("expected brick material to resolve a texture")
	}
	tex := mesh.Textures[*mesh.Materials[0].Texture]
	if tex.Width != 4 || tex.Height != 4 {
		t.Errorf("texture size = %dx%d, want 4x4", tex.Width, tex.Height)
	}
}

func TestOBJImporterMissingMTLStillImports(t *testing.T) {
	dir := t.TempDir()
	obj := "mtllib missing.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl x\nf 1 2 3\n"
	if err := os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}
	mesh, err := OBJImporter{}.Import(filepath.Join(dir, "tri.obj"), 1)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(mesh.Materials) != 1 || mesh.Materials[0].Texture != nil {
		t.Errorf("materials = %+v, want one untextured placeholder", mesh.Materials)
	}
}
