// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package importer

// obj.go is the Wavefront OBJ importer (SPEC_FULL "Importer surface"),
// adapted from the teacher's load/obj.go: same line-token parsing shape,
// generalized from triangle-only faces to arbitrary convex polygons (a
// papercraft face need not be a triangle) and targeted at papercraft.Mesh
// instead of a GPU-ready vertex/index buffer.
//
//	https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format
import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/math/lin"
)

// ParseOBJ reads a Wavefront OBJ document and returns one Mesh holding the
// faces of every object and group ("o" and "g" lines are ignored). Each
// distinct "usemtl" name gets an untextured placeholder Material, in order
// of first use, and Face.Material indexes it (-1 before any "usemtl").
// Call ResolveMaterials afterward to replace the placeholders with the
// parsed MTL definitions and attach their textures.
func ParseOBJ(r io.Reader, scale float64) (*papercraft.Mesh, error) {
	var verts []lin.V3
	var normals []lin.V3
	var uvs []lin.V2
	type polyVert struct{ v, t, n int }
	var faces [][]polyVert
	var faceMtl []string
	curMtl := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "v":
			p, err := parseV3(tokens[1:])
			if err != nil {
				return nil, papercraft.ImportFailuref("obj: bad vertex %q: %w", line, err)
			}
			verts = append(verts, p)
		case "vn":
			n, err := parseV3(tokens[1:])
			if err != nil {
				return nil, papercraft.ImportFailuref("obj: bad normal %q: %w", line, err)
			}
			normals = append(normals, n)
		case "vt":
			u, v, err := parseUV(tokens[1:])
			if err != nil {
				return nil, papercraft.ImportFailuref("obj: bad texcoord %q: %w", line, err)
			}
			uvs = append(uvs, lin.V2{X: u, Y: v})
		case "f":
			poly := make([]polyVert, 0, len(tokens)-1)
			for _, tok := range tokens[1:] {
				pv, err := parseFaceVertex(tok)
				if err != nil {
					return nil, papercraft.ImportFailuref("obj: bad face %q: %w", line, err)
				}
				poly = append(poly, pv)
			}
			if len(poly) < 3 {
				return nil, papercraft.ImportFailuref("obj: face with fewer than 3 vertices %q", line)
			}
			faces = append(faces, poly)
			faceMtl = append(faceMtl, curMtl)
		case "usemtl":
			curMtl = strings.TrimSpace(strings.TrimPrefix(line, "usemtl"))
		case "o", "g", "s", "mtllib":
			// object/group name, smoothing group, material library: resolved
			// by the caller (ResolveMaterials) or not tracked at this scope.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, papercraft.ImportFailuref("obj: read: %w", err)
	}
	if len(verts) == 0 || len(faces) == 0 {
		return nil, papercraft.ImportFailuref("obj: no vertex or face data")
	}

	mesh := papercraft.NewMesh(scale)
	mesh.Verts = make([]papercraft.Vertex, len(verts))
	for i, p := range verts {
		mesh.Verts[i].Pos = p
	}

	mtlIndex := map[string]int{}
	mtlOrder := []string{}
	mtlIndexOf := func(name string) int {
		if name == "" {
			return -1
		}
		if idx, ok := mtlIndex[name]; ok {
			return idx
		}
		idx := len(mtlOrder)
		mtlIndex[name] = idx
		mtlOrder = append(mtlOrder, name)
		return idx
	}

	mesh.Faces = make([]papercraft.Face, len(faces))
	for fi, poly := range faces {
		fverts := make([]papercraft.VertexIndex, len(poly))
		for pi, pv := range poly {
			vi := pv.v
			if vi < 0 || vi >= len(mesh.Verts) {
				return nil, papercraft.ImportFailuref("obj: vertex index %d out of range", vi+1)
			}
			if pv.n >= 0 && pv.n < len(normals) {
				mesh.Verts[vi].Normal = normals[pv.n]
			}
			if pv.t >= 0 && pv.t < len(uvs) {
				mesh.Verts[vi].UV = uvs[pv.t]
			}
			fverts[pi] = papercraft.VertexIndex(vi)
		}
		material := -1
		if fi < len(faceMtl) {
			material = mtlIndexOf(faceMtl[fi])
		}
		mesh.Faces[fi] = papercraft.Face{Verts: fverts, Material: material}
	}
	mesh.BuildAdjacency()

	for _, name := range mtlOrder {
		mesh.Materials = append(mesh.Materials, *papercraft.NewMaterial(name))
	}
	slog.Debug("obj parsed", "verts", len(mesh.Verts), "faces", len(mesh.Faces), "materials", len(mesh.Materials))
	return mesh, nil
}

// ResolveMaterials replaces mesh.Materials (named placeholders assigned by
// ParseOBJ from "usemtl" lines) with the full definitions from a parsed MTL
// table, matched by name, and attaches mesh.Textures from those that name a
// texture file (resolved and decoded by the caller via ParsePNG). Faces
// whose usemtl name has no MTL entry keep an untextured material (invariant
// 6: renders as paper color).
func ResolveMaterials(mesh *papercraft.Mesh, defs []MaterialDef, textures map[string]*papercraft.Texture) {
	byName := map[string]MaterialDef{}
	for _, d := range defs {
		byName[d.Name] = d
	}
	resolved := make([]papercraft.Material, len(mesh.Materials))
	for i, m := range mesh.Materials {
		def, ok := byName[m.Name]
		resolved[i] = *papercraft.NewMaterial(m.Name)
		if !ok || def.TextureFile == "" {
			continue
		}
		tex, ok := textures[def.TextureFile]
		if !ok || tex == nil {
			continue
		}
		ti := papercraft.TextureIndex(len(mesh.Textures))
		mesh.Textures = append(mesh.Textures, *tex)
		resolved[i].WithTexture(ti)
	}
	mesh.Materials = resolved
}

func parseV3(fields []string) (lin.V3, error) {
	if len(fields) < 3 {
		return lin.V3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return lin.V3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return lin.V3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return lin.V3{}, err
	}
	return lin.V3{X: x, Y: y, Z: z}, nil
}

func parseUV(fields []string) (u, v float64, err error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	if u, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, err
	}
	if v, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, err
	}
	return u, v, nil // kept in OBJ's bottom-left origin; papercraft.TexturePixelUV flips v into raster rows.
}

// parseFaceVertex parses one "v", "v/t", "v//n" or "v/t/n" face token into
// zero-based indices, -1 meaning absent.
func parseFaceVertex(tok string) (pv struct{ v, t, n int }, err error) {
	parts := strings.Split(tok, "/")
	pv.v, pv.t, pv.n = -1, -1, -1
	if pv.v, err = parseIndex(parts[0]); err != nil {
		return pv, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if pv.t, err = parseIndex(parts[1]); err != nil {
			return pv, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if pv.n, err = parseIndex(parts[2]); err != nil {
			return pv, err
		}
	}
	return pv, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	return n - 1, nil // OBJ indices are 1-based.
}
