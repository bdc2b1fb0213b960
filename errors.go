// Copyright © 2024 Galvanized Logic Inc.

package papercraft

// errors.go classifies the error kinds the core API can return (§7): a
// caller uses errors.Is against the exported sentinels to branch on kind,
// while the wrapped message carries the operation-specific detail.

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Use errors.Is(err, papercraft.ErrInvalidOperation)
// etc. to classify an error returned from a Papercraft method.
var (
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrUnknownKey        = errors.New("unknown key")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrImportFailure     = errors.New("import failure")
	ErrIoFailure         = errors.New("io failure")
)

func invalidOperationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOperation}, args...)...)
}

func unknownKeyf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUnknownKey}, args...)...)
}

func importFailuref(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrImportFailure}, args...)...)
}

// ImportFailuref builds an ErrImportFailure-wrapped error. Exported for the
// importer package, which classifies its own errors the same way the core
// API does (§7) without reaching into papercraft's unexported helpers.
func ImportFailuref(format string, args ...any) error { return importFailuref(format, args...) }

func ioFailuref(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIoFailure}, args...)...)
}
