// This file implements SwapRemoveMap, the index correspondence table used
// to address swap-compacted structures by their pre-removal ids.
package core

import "fmt"

// SwapRemoveMap is a bijection from an original id domain 0..n-1 onto the
// current physical slots of a structure that removes entries by
// swap-compaction (RemoveNode's discipline: the hole left by a removal is
// filled by the last slot).
//
// It starts as the identity. After any interleaving of SwapRemove calls,
// Map(id) yields the slot a surviving logical id currently occupies, so one
// recursive pass can keep naming vertices by the ids it saw at the start
// while the underlying graph compacts underneath it.
type SwapRemoveMap struct {
	// fwd[id] is the current slot of logical id, or -1 once removed.
	fwd []Node

	// back[slot] is the logical id occupying slot, for slot < live.
	back []Node

	// live is the number of surviving entries.
	live int
}

// NewSwapRemoveMap returns the identity correspondence over 0..n-1.
func NewSwapRemoveMap(n int) *SwapRemoveMap {
	m := &SwapRemoveMap{fwd: make([]Node, n), back: make([]Node, n), live: n}
	for i := 0; i < n; i++ {
		m.fwd[i] = i
		m.back[i] = i
	}

	return m
}

// Len returns the number of surviving entries.
func (m *SwapRemoveMap) Len() int { return m.live }

// OriginalLen returns the size of the original id domain.
func (m *SwapRemoveMap) OriginalLen() int { return len(m.fwd) }

// Alive reports whether logical id has not been removed.
func (m *SwapRemoveMap) Alive(id Node) bool {
	m.domainCheck(id)

	return m.fwd[id] >= 0
}

// Map returns the current slot of logical id. Panics if id is out of the
// original domain or already removed.
//
// Complexity: O(1).
func (m *SwapRemoveMap) Map(id Node) Node {
	m.domainCheck(id)
	p := m.fwd[id]
	if p < 0 {
		panic(fmt.Sprintf("core: id %d already swap-removed", id))
	}

	return p
}

// SwapRemove removes logical id and returns the slot it occupied just
// before removal. The logical id previously mapped to the last live slot
// is re-pointed at the vacated slot, mirroring the structure's own
// swap-compaction. Panics on double removal or an out-of-domain id.
//
// Complexity: O(1).
func (m *SwapRemoveMap) SwapRemove(id Node) Node {
	p := m.Map(id)
	last := m.live - 1
	lastID := m.back[last]
	m.fwd[lastID] = p
	m.back[p] = lastID
	m.fwd[id] = -1
	m.live = last

	return p
}

func (m *SwapRemoveMap) domainCheck(id Node) {
	if id < 0 || id >= len(m.fwd) {
		panic(fmt.Sprintf("core: id %d outside original domain [0,%d)", id, len(m.fwd)))
	}
}
