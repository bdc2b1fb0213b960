// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package importer

// mtl.go is the Wavefront MTL importer, adapted from the teacher's
// load/mtl.go. The teacher only kept shading coefficients (Ka/Kd/Ks/Ns) for
// a GPU material; a papercraft material only needs a name and, optionally,
// the diffuse texture file (map_Kd) an OBJ face's usemtl name resolves to.
//
//	https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format

import (
	"bufio"
	"io"
	"strings"

	"github.com/gazed/papercraft"
)

// MaterialDef is one "newmtl" block parsed from an MTL document.
type MaterialDef struct {
	Name        string
	TextureFile string // from map_Kd, empty if the material is untextured.
}

// ParseMTL reads a Wavefront MTL document and returns one MaterialDef per
// "newmtl" block, in file order.
func ParseMTL(r io.Reader) ([]MaterialDef, error) {
	var defs []MaterialDef
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "newmtl":
			defs = append(defs, MaterialDef{Name: strings.TrimSpace(strings.TrimPrefix(line, "newmtl"))})
		case "map_Kd":
			if len(defs) == 0 {
				continue // map_Kd before any newmtl: malformed, ignored.
			}
			defs[len(defs)-1].TextureFile = tokens[len(tokens)-1]
		case "Ka", "Kd", "Ks", "d", "Ns", "Ni", "illum":
			// shading coefficients: no analog in a flat-color/textured
			// papercraft material, not tracked.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, papercraft.ImportFailuref("mtl: read: %w", err)
	}
	return defs, nil
}
