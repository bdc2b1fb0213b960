// Copyright © 2024 Galvanized Logic Inc.

// Command papercraft is the import/export entry point over the core API
// (spec.md §6's "programmatic core API" surface, invoked directly rather
// than through the out-of-scope HTTP façade). Grounded on the teacher
// pack's flag-based single-command-line tools (gl/gen/gen.go).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/export/pdf"
	"github.com/gazed/papercraft/export/svg"
	"github.com/gazed/papercraft/importer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "import":
		err = runImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		slog.Default().Error("papercraft", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: papercraft import [-out FILE] [-format svg|pdf] [-scale N] [-notex] [-opts FILE.yaml] <model.obj>")
}

// runImport loads an OBJ model, builds a Papercraft project (every edge
// starting Cut per invariant 3), and writes a single SVG or PDF export.
func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	out := fs.String("out", "", "output file path (default: <model>.svg or .pdf)")
	format := fs.String("format", "svg", "export format: svg or pdf")
	scale := fs.Float64("scale", 1, "world-units to millimeters scale")
	notex := fs.Bool("notex", false, "skip embedding textures")
	optsPath := fs.String("opts", "", "yaml file overriding default PaperOptions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		usage()
		return papercraft.ImportFailuref("import: missing model path")
	}
	modelPath := fs.Arg(0)

	opts := papercraft.DefaultOptions()
	if *optsPath != "" {
		data, err := os.ReadFile(*optsPath)
		if err != nil {
			return fmt.Errorf("read options file: %w", err)
		}
		opts, err = papercraft.ParseOptions(data)
		if err != nil {
			return err
		}
	}

	mesh, err := (importer.OBJImporter{}).Import(modelPath, *scale)
	if err != nil {
		return err
	}
	pc, err := papercraft.FromModel(mesh, opts)
	if err != nil {
		return err
	}
	if err := pc.PackIslands(); err != nil {
		return err
	}

	withTextures := !*notex
	var doc []byte
	outPath := *out
	switch *format {
	case "svg":
		doc, err = svg.Generate(pc, withTextures)
		if outPath == "" {
			outPath = modelPath + ".svg"
		}
	case "pdf":
		doc, err = pdf.Generate(pc, withTextures)
		if outPath == "" {
			outPath = modelPath + ".pdf"
		}
	default:
		return papercraft.ImportFailuref("import: unknown format %q (want svg or pdf)", *format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, doc, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	slog.Default().Info("papercraft export complete", "model", modelPath, "out", outPath, "format", *format)
	return nil
}
