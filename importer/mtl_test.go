// Copyright © 2024 Galvanized Logic Inc.

package importer

import (
	"strings"
	"testing"
)

const sampleMTL = `
newmtl red
Kd 0.8 0.2 0.2
newmtl brick
Kd 1 1 1
map_Kd brick.png
`

func TestParseMTL(t *testing.T) {
	defs, err := ParseMTL(strings.NewReader(sampleMTL))
	if err != nil {
		t.Fatalf("ParseMTL: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("defs = %d, want 2", len(defs))
	}
	if defs[0].Name != "red" || defs[0].TextureFile != "" {
		t.Errorf("defs[0] = %+v, want untextured %q", defs[0], "red")
	}
	if defs[1].Name != "brick" || defs[1].TextureFile != "brick.png" {
		t.Errorf("defs[1] = %+v, want %q textured with brick.png", defs[1], "brick")
	}
}
