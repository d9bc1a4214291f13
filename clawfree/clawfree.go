// Tree-driven claw-free recognition: shape pre-check, then localized
// complement-triangle tests on reduced Prime quotients.
package clawfree

import (
	"fmt"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
)

// Check reports whether g is claw-free, using its modular decomposition
// tree t. Neither input is mutated. A non-nil error means the inputs were
// unusable (nil, or a tree breaking the decomposition contract), never a
// negative classification.
func Check(g *core.Graph, t *mdtree.Tree) (Result, error) {
	if g == nil || t == nil {
		return Result{}, ErrNilInput
	}
	root := t.Root()
	if root == mdtree.NoID {
		return yes(), nil
	}

	if res, err := structureCheck(t, root); err != nil || !res.ClawFree {
		return res, err
	}

	switch t.Kind(root) {
	case mdtree.KindLeaf:
		return yes(), nil
	case mdtree.KindPrime:
		return primeCheck(g, t, root, nil)
	case mdtree.KindSeries:
		return seriesCheck(g, t, root, nil)
	default:
		return parallelCheck(g, t, root)
	}
}

// structureCheck is stage 1: decide from tree shape alone whether a claw
// is already unavoidable.
func structureCheck(t *mdtree.Tree, root mdtree.NodeID) (Result, error) {
	switch t.Kind(root) {
	case mdtree.KindLeaf:
		return yes(), nil
	case mdtree.KindPrime:
		return primeStructure(t, root, nil), nil
	case mdtree.KindSeries:
		return seriesStructure(t, root, nil)
	default:
		for _, child := range t.Children(root) {
			switch t.Kind(child) {
			case mdtree.KindLeaf:
			case mdtree.KindPrime:
				if res := primeStructure(t, child, []mdtree.NodeID{child}); !res.ClawFree {
					return res, nil
				}
			case mdtree.KindSeries:
				res, err := seriesStructure(t, child, []mdtree.NodeID{child})
				if err != nil || !res.ClawFree {
					return res, err
				}
			default:
				return Result{}, fmt.Errorf("%w: Parallel under Parallel", ErrTreeContract)
			}
		}

		return yes(), nil
	}
}

// primeStructure requires every child of a Prime module to be a clique.
func primeStructure(t *mdtree.Tree, module mdtree.NodeID, chain []mdtree.NodeID) Result {
	for _, child := range t.Children(module) {
		if !t.ModuleIsClique(child) {
			return no(Witness{
				Stage:   StageStructure,
				Modules: append(chain[:len(chain):len(chain)], child),
			})
		}
	}

	return yes()
}

// seriesStructure requires a Series module's Prime children to have
// all-clique grandchildren and its Parallel children to have at most two
// grandchildren, each a clique.
func seriesStructure(t *mdtree.Tree, module mdtree.NodeID, chain []mdtree.NodeID) (Result, error) {
	for _, child := range t.Children(module) {
		switch t.Kind(child) {
		case mdtree.KindLeaf:
		case mdtree.KindPrime:
			for _, grand := range t.Children(child) {
				if !t.ModuleIsClique(grand) {
					return no(Witness{
						Stage:   StageStructure,
						Modules: append(chain[:len(chain):len(chain)], child, grand),
					}), nil
				}
			}
		case mdtree.KindParallel:
			grands := t.Children(child)
			if len(grands) > 2 {
				return no(Witness{
					Stage:   StageStructure,
					Modules: append(chain[:len(chain):len(chain)], child),
				}), nil
			}
			for _, grand := range grands {
				if !t.ModuleIsClique(grand) {
					return no(Witness{
						Stage:   StageStructure,
						Modules: append(chain[:len(chain):len(chain)], child, grand),
					}), nil
				}
			}
		default:
			return Result{}, fmt.Errorf("%w: Series under Series", ErrTreeContract)
		}
	}

	return yes(), nil
}

// primeCheck is the numeric test for a Prime module: run the per-vertex
// complement-triangle search on the quotient of one representative per
// child.
func primeCheck(g *core.Graph, t *mdtree.Tree, module mdtree.NodeID, chain []mdtree.NodeID) (Result, error) {
	quotient := g.Subgraph(t.ReducedModule(module))
	res, err := Naive(quotient)
	if err != nil || res.ClawFree {
		return res, err
	}
	res.Witness.Stage = StagePrime
	res.Witness.Modules = append(chain[:len(chain):len(chain)], module)

	return res, nil
}

// seriesCheck runs the complement-triangle test on the quotient of every
// Prime child of a Series module. Parallel children are already safe by
// stage 1.
func seriesCheck(g *core.Graph, t *mdtree.Tree, module mdtree.NodeID, chain []mdtree.NodeID) (Result, error) {
	for _, child := range t.Children(module) {
		if t.Kind(child) != mdtree.KindPrime {
			continue
		}
		quotient := g.Subgraph(t.ReducedModule(child))
		quotient.Complement()
		nodes, counts, err := triangleCounts(quotient)
		if err != nil {
			return Result{}, err
		}
		for _, c := range counts {
			if c != 0 {
				return no(Witness{
					Stage:   StageSeries,
					Modules: append(chain[:len(chain):len(chain)], child),
					Nodes:   nodes,
					Counts:  counts,
				}), nil
			}
		}
	}

	return yes(), nil
}

// parallelCheck recurses into each child of a Parallel root; every
// component must pass on its own.
func parallelCheck(g *core.Graph, t *mdtree.Tree, root mdtree.NodeID) (Result, error) {
	for _, child := range t.Children(root) {
		var (
			res Result
			err error
		)
		switch t.Kind(child) {
		case mdtree.KindLeaf:
			continue
		case mdtree.KindPrime:
			res, err = primeCheck(g, t, child, []mdtree.NodeID{child})
		case mdtree.KindSeries:
			res, err = seriesCheck(g, t, child, []mdtree.NodeID{child})
		default:
			return Result{}, fmt.Errorf("%w: Parallel under Parallel", ErrTreeContract)
		}
		if err != nil || !res.ClawFree {
			return res, err
		}
	}

	return yes(), nil
}
