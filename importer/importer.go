// Copyright © 2024 Galvanized Logic Inc.

// Package importer reads 3D model files into a papercraft.Mesh. It mirrors
// the teacher's load package's role (format-specific parsers feeding a
// single in-memory representation) scaled down to the one scope SPEC_FULL
// gives it: a minimal Wavefront OBJ+MTL+PNG pipeline producing the Mesh that
// papercraft.FromModel turns into one island per face with every seam Cut.
package importer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gazed/papercraft"
)

// Importer reads the model file named path into a Mesh scaled by scale
// (world-units to millimeters). Implementations resolve their own sibling
// files (materials, textures) from path's directory.
//
// OBJImporter is the only implementation in scope for SPEC_FULL; STL,
// glTF and PDO (Pepakura) are documented extension points with no importer
// here, same as the teacher's load package leaves IQM/glTF binary decoding
// to format-specific files it never added for papercraft's single OBJ path.
type Importer interface {
	Import(path string, scale float64) (*papercraft.Mesh, error)
}

// OBJImporter reads a ".obj" file plus its referenced ".mtl" material
// library and any PNG textures those materials name, all resolved relative
// to the .obj file's own directory.
type OBJImporter struct{}

// Import implements Importer for Wavefront OBJ.
func (OBJImporter) Import(path string, scale float64) (*papercraft.Mesh, error) {
	dir := filepath.Dir(path)
	mesh, err := parseFile(path, func(r io.Reader) (*papercraft.Mesh, error) {
		return ParseOBJ(r, scale)
	})
	if err != nil {
		return nil, err
	}

	mtlName := mtllibName(path)
	if mtlName == "" || len(mesh.Materials) == 0 {
		return mesh, nil
	}
	defs, err := parseFile(filepath.Join(dir, mtlName), ParseMTL)
	if err != nil {
		return mesh, nil // missing/unreadable MTL: faces stay untextured (invariant 6).
	}

	textures := map[string]*papercraft.Texture{}
	for _, def := range defs {
		if def.TextureFile == "" {
			continue
		}
		tex, err := parseFile(filepath.Join(dir, def.TextureFile), func(r io.Reader) (*papercraft.Texture, error) {
			return ParsePNG(def.TextureFile, r)
		})
		if err == nil {
			textures[def.TextureFile] = tex
		}
	}
	ResolveMaterials(mesh, defs, textures)
	return mesh, nil
}

// mtllibName scans path's obj file a second time for its "mtllib" line.
// ParseOBJ does not track it since it has no bearing on Mesh geometry; the
// importer alone needs it to locate the sibling material file.
func mtllibName(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "mtllib ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "mtllib"))
		}
	}
	return ""
}

func parseFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, papercraft.ImportFailuref("open %s: %w", path, err)
	}
	defer f.Close()
	return parse(f)
}
