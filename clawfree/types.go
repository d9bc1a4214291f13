// This file declares the result and witness types and the sentinel
// errors.
package clawfree

import (
	"errors"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
)

var (
	// ErrNilInput indicates a nil graph or tree.
	ErrNilInput = errors.New("clawfree: nil graph or tree")

	// ErrTreeContract indicates the decomposition tree violates its
	// contract (Series under Series, Parallel under Parallel).
	ErrTreeContract = errors.New("clawfree: decomposition tree violates its contract")
)

// Stage names the phase of Check that produced a negative answer.
type Stage uint8

const (
	// StageStructure is the tree shape pre-check.
	StageStructure Stage = iota

	// StagePrime is the numeric test on a Prime quotient.
	StagePrime

	// StageSeries is the numeric test on a Prime child of a Series.
	StageSeries
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageStructure:
		return "Structure"
	case StagePrime:
		return "Prime"
	case StageSeries:
		return "Series"
	default:
		return "Stage(?)"
	}
}

// Witness pinpoints the first violation found. Diagnostic only; the exact
// claw can be reconstructed from it but Check does not spell it out.
type Witness struct {
	// Stage that failed.
	Stage Stage

	// Modules is the offending module chain, outermost first. For
	// StageStructure it ends at the non-clique module (or the Parallel
	// with too many grandchildren); for the numeric stages it names the
	// Prime module whose quotient carried the triangle.
	Modules []mdtree.NodeID

	// Center is the claw center's label, set by the per-vertex numeric
	// test (StagePrime).
	Center core.Label

	// Nodes are the labels of the tested quotient's vertices, aligned
	// with Counts.
	Nodes []core.Label

	// Counts is the complement cube diagonal: Counts[i] > 0 means a
	// complement triangle, hence an independent triple, through Nodes[i].
	Counts []int
}

// Result is the outcome of Check or Naive.
type Result struct {
	ClawFree bool

	// Witness is set iff ClawFree is false.
	Witness *Witness
}

func yes() Result { return Result{ClawFree: true} }

func no(w Witness) Result { return Result{Witness: &w} }
