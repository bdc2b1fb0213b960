// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package importer

import (
	"image/png"
	"io"

	"github.com/gazed/papercraft"
)

// ParsePNG decodes a PNG texture file into a papercraft.Texture, kept close
// to the teacher's load/png.go (a thin wrapper over image/png) since the
// texture pipeline otherwise matches: decode once on import, then hold a
// dense CPU-side pixel buffer for the exporters.
func ParsePNG(name string, r io.Reader) (*papercraft.Texture, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, papercraft.ImportFailuref("png %s: %w", name, err)
	}
	return papercraft.NewTexture(name, img), nil
}
