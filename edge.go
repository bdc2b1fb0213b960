// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// edge.go is the per-edge cut/fold/flap state layered on top of the
// immutable Mesh topology (component C). An edge's EdgeStatus is mutable
// for the project's lifetime; everything else about an Edge is not.

// FlapSide names which face-side(s) of a cut edge carry a glue flap.
type FlapSide int

const (
	FlapNone FlapSide = iota
	FlapA
	FlapB
	FlapBoth
)

func (s FlapSide) String() string {
	switch s {
	case FlapNone:
		return "none"
	case FlapA:
		return "a"
	case FlapB:
		return "b"
	case FlapBoth:
		return "both"
	default:
		return "unknown"
	}
}

// FlapAction drives edge_toggle_flap's cycling of FlapSide.
type FlapAction int

const (
	FlapToggle FlapAction = iota // Both <-> None
	FlapNext                     // cycles None -> A -> B -> Both -> None
	FlapHide                     // forces None
)

// FlapStyle is the export-time rendering style for whatever flaps exist.
// It is a PaperOptions setting, distinct from the per-edge FlapSide.
type FlapStyle int

const (
	FlapStyleNone FlapStyle = iota
	FlapStyleTextured
	FlapStyleWhite
	FlapStyleNoneHidden // flap geometry is still computed, just not emitted.
)

// FoldStyle names the fold-line variants a PaperOptions can carry. The
// SVG/PDF emitters do not read it: they draw every joined edge as a full
// mountain or valley line.
type FoldStyle int

const (
	FoldStyleNone FoldStyle = iota
	FoldStyleFull
	FoldStyleOut
	FoldStyleIn
	FoldStyleFullAndOut
)

// EdgeIDPosition places the edge-identifier label relative to the cut line.
type EdgeIDPosition int

const (
	EdgeIDNone EdgeIDPosition = iota
	EdgeIDOutside
	EdgeIDInside
)

// statusKind tags the three-way EdgeStatus variant (§3 EdgeStatus).
type statusKind int

const (
	statusJoined statusKind = iota
	statusCut
	statusHidden
)

// EdgeStatus is the tagged per-edge state: Joined (a fold), Cut (a boundary,
// with an optional flap side), or Hidden (suppressed entirely).
type EdgeStatus struct {
	kind statusKind
	flap FlapSide
}

// Joined reports whether this edge is currently a fold.
func (s EdgeStatus) Joined() bool { return s.kind == statusJoined }

// Cut reports whether this edge is currently a cut boundary, and if so
// which side(s) carry a flap.
func (s EdgeStatus) Cut() (flap FlapSide, ok bool) { return s.flap, s.kind == statusCut }

// Hidden reports whether this edge is currently suppressed.
func (s EdgeStatus) Hidden() bool { return s.kind == statusHidden }

func statusJoin() EdgeStatus  { return EdgeStatus{kind: statusJoined} }
func statusCutFn() EdgeStatus { return EdgeStatus{kind: statusCut, flap: FlapNone} }
func statusHide() EdgeStatus  { return EdgeStatus{kind: statusHidden} }

// nextFlap cycles side per action (edge_toggle_flap, 4.D/F').
func nextFlap(side FlapSide, action FlapAction) FlapSide {
	switch action {
	case FlapHide:
		return FlapNone
	case FlapToggle:
		if side == FlapNone {
			return FlapBoth
		}
		return FlapNone
	case FlapNext:
		return (side + 1) % (FlapBoth + 1)
	}
	return side
}

// flapVisible reports whether a flap on edge side `side` should be drawn
// for the perimeter entry whose face lies on the given sign side of the
// edge (component I: flap_visible(side, sign)).
func flapVisible(side FlapSide, sign int) bool {
	switch side {
	case FlapBoth:
		return true
	case FlapA:
		return sign > 0
	case FlapB:
		return sign < 0
	default:
		return false
	}
}
