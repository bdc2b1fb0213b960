// Copyright © 2024 Galvanized Logic Inc.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTriangleOBJ(t *testing.T, dir string) string {
	t.Helper()
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	path := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(path, []byte(obj), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunImportWritesSVGByDefault(t *testing.T) {
	dir := t.TempDir()
	objPath := writeTriangleOBJ(t, dir)

	if err := runImport([]string{objPath}); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if _, err := os.Stat(objPath + ".svg"); err != nil {
		t.Errorf("expected default .svg output file, stat error: %v", err)
	}
}

func TestRunImportWritesPDFToExplicitPath(t *testing.T) {
	dir := t.TempDir()
	objPath := writeTriangleOBJ(t, dir)
	outPath := filepath.Join(dir, "out.pdf")

	if err := runImport([]string{"-format", "pdf", "-out", outPath, objPath}); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Errorf("expected non-empty PDF output")
	}
}

func TestRunImportRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	objPath := writeTriangleOBJ(t, dir)

	if err := runImport([]string{"-format", "png", objPath}); err == nil {
		t.Errorf("expected an error for an unsupported export format")
	}
}

func TestRunImportMissingPathErrors(t *testing.T) {
	if err := runImport(nil); err == nil {
		t.Errorf("expected an error when no model path is given")
	}
}
