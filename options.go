// SPDX-FileCopyrightText : © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package papercraft

// options.go reduces the PaperOptions API footprint using functional
// options, the same pattern config.go uses for NewEngine.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"gopkg.in/yaml.v3"
)

// Margins is the page content inset in millimeters.
type Margins struct {
	Top, Left, Right, Bottom float64
}

// PaperOptions is an immutable-per-export snapshot of every layout and
// export setting (§3). A project holds one PaperOptions; set_options
// replaces it wholesale.
type PaperOptions struct {
	PageWidth  float64 `yaml:"page_width_mm"`
	PageHeight float64 `yaml:"page_height_mm"`
	Margins    Margins `yaml:"margins_mm"`
	Pages      int     `yaml:"pages"`
	Columns    int     `yaml:"columns"`
	Scale      float64 `yaml:"scale"`

	FlapStyle    FlapStyle      `yaml:"flap_style"`
	FlapWidth    float64        `yaml:"flap_width_mm"`
	FoldStyle    FoldStyle      `yaml:"fold_style"`
	EdgeIDPos    EdgeIDPosition `yaml:"edge_id_position"`
	EdgeIDSize   float64        `yaml:"edge_id_font_pt"`
	ShowPageNum  bool           `yaml:"show_page_number"`
	ShowSignature bool          `yaml:"show_signature"`

	PaperColor RGBA `yaml:"paper_color"`
	CutColor   RGBA `yaml:"cut_color"`
	FoldColor  RGBA `yaml:"fold_color"`
	TabColor   RGBA `yaml:"tab_color"`
}

// optionDefaults provides reasonable defaults so a project exports
// something sane even if no option attributes are set.
var optionDefaults = PaperOptions{
	PageWidth:  210, // A4
	PageHeight: 297,
	Margins:    Margins{Top: 10, Left: 10, Right: 10, Bottom: 10},
	Pages:      1,
	Columns:    1,
	Scale:      1,

	FlapStyle:    FlapStyleTextured,
	FlapWidth:    5,
	FoldStyle:    FoldStyleFull,
	EdgeIDPos:    EdgeIDNone,
	EdgeIDSize:   4,
	ShowPageNum:  true,
	ShowSignature: false,

	PaperColor: RGBA{1, 1, 1, 1},
	CutColor:   RGBA{0, 0, 0, 1},
	FoldColor:  RGBA{0, 0, 0, 1},
	TabColor:   RGBA{0, 0, 0, 1},
}

// DefaultOptions returns a copy of the built-in default PaperOptions.
func DefaultOptions() PaperOptions { return optionDefaults }

// OptionAttr defines optional attributes used to configure a PaperOptions.
//
//	opts := papercraft.NewOptions(
//	   papercraft.PageSize(210, 297),
//	   papercraft.FlapWidthMM(6),
//	)
type OptionAttr func(*PaperOptions)

// NewOptions builds a PaperOptions starting from the defaults and applying
// each attribute in order.
func NewOptions(attrs ...OptionAttr) PaperOptions {
	opts := optionDefaults
	for _, attr := range attrs {
		attr(&opts)
	}
	return opts
}

// PageSize sets the page dimensions in millimeters.
func PageSize(w, h float64) OptionAttr {
	return func(o *PaperOptions) { o.PageWidth = w; o.PageHeight = h }
}

// PageMargins sets the page content margins in millimeters.
func PageMargins(top, left, right, bottom float64) OptionAttr {
	return func(o *PaperOptions) { o.Margins = Margins{top, left, right, bottom} }
}

// Columns sets the page grid column count.
func Columns(n int) OptionAttr {
	return func(o *PaperOptions) {
		if n > 0 {
			o.Columns = n
		}
	}
}

// Scale sets the world-units-to-millimeters scale factor.
func Scale(s float64) OptionAttr {
	return func(o *PaperOptions) {
		if s > 0 {
			o.Scale = s
		}
	}
}

// Flaps sets the flap rendering style and width in millimeters.
func Flaps(style FlapStyle, widthMM float64) OptionAttr {
	return func(o *PaperOptions) { o.FlapStyle = style; o.FlapWidth = widthMM }
}

// Folds sets which fold-line styles are drawn.
func Folds(style FoldStyle) OptionAttr {
	return func(o *PaperOptions) { o.FoldStyle = style }
}

// EdgeIDs sets the edge-identifier label placement and font size (pt).
func EdgeIDs(pos EdgeIDPosition, fontPt float64) OptionAttr {
	return func(o *PaperOptions) { o.EdgeIDPos = pos; o.EdgeIDSize = fontPt }
}

// Colors sets the paper, cut, fold and tab colors.
func Colors(paper, cut, fold, tab RGBA) OptionAttr {
	return func(o *PaperOptions) {
		o.PaperColor, o.CutColor, o.FoldColor, o.TabColor = paper, cut, fold, tab
	}
}

// Signature toggles the self-promotion signature and page-number text.
func Signature(showSignature, showPageNumber bool) OptionAttr {
	return func(o *PaperOptions) { o.ShowSignature = showSignature; o.ShowPageNum = showPageNumber }
}

// ParseOptions decodes a yaml document into a PaperOptions, starting from
// the built-in defaults so a partial document only overrides what it sets.
func ParseOptions(data []byte) (PaperOptions, error) {
	opts := optionDefaults
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return optionDefaults, ioFailuref("parse options: %w", err)
	}
	return opts, nil
}
