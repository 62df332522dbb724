// Package chain reconstructs the canonical chain from scanned block records.
package chain

import "github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"

// Candidates maps a previous block hash to the scanned blocks that extend it.
// It is built once per pass and never mutated while resolving.
type Candidates struct {
	byPrev map[string][]model.ScannedBlock
	seen   map[[2]string]struct{}
	next   map[string]resolution
	count  int
}

type resolution struct {
	block model.ScannedBlock
	ok    bool
}

type branch struct {
	origin model.ScannedBlock
	tip    string
}

// NewCandidates creates an empty candidate map.
func NewCandidates() *Candidates {
	return &Candidates{
		byPrev: make(map[string][]model.ScannedBlock),
		seen:   make(map[[2]string]struct{}),
		next:   make(map[string]resolution),
	}
}

// Add records a scanned block. Verbatim duplicates under the same parent are dropped.
func (c *Candidates) Add(block model.ScannedBlock) bool {
	key := [2]string{block.PrevHash, block.Hash}
	if _, dup := c.seen[key]; dup {
		return false
	}
	c.seen[key] = struct{}{}
	c.byPrev[block.PrevHash] = append(c.byPrev[block.PrevHash], block)
	c.count++
	clear(c.next)
	return true
}

// Len returns the number of distinct candidates.
func (c *Candidates) Len() int {
	return c.count
}

// ResolveNext returns the block that extends prevHash on the longest branch.
//
// With several children every branch advances one block per round, forks along
// the way resolved recursively. A branch whose tip has no child is eliminated.
// The last surviving branch wins. Branches that run out in the same round tie,
// and the tie goes to the earliest scanned child.
func (c *Candidates) ResolveNext(prevHash string) (model.ScannedBlock, bool) {
	if res, ok := c.next[prevHash]; ok {
		return res.block, res.ok
	}
	block, ok := c.resolve(prevHash)
	c.next[prevHash] = resolution{block: block, ok: ok}
	return block, ok
}

func (c *Candidates) resolve(prevHash string) (model.ScannedBlock, bool) {
	children := c.byPrev[prevHash]
	switch len(children) {
	case 0:
		return model.ScannedBlock{}, false
	case 1:
		return children[0], true
	}

	alive := make([]branch, 0, len(children))
	for _, child := range children {
		alive = append(alive, branch{origin: child, tip: child.Hash})
	}
	for len(alive) > 1 {
		survivors := alive[:0:0]
		for _, b := range alive {
			next, ok := c.ResolveNext(b.tip)
			if !ok {
				continue
			}
			survivors = append(survivors, branch{origin: b.origin, tip: next.Hash})
		}
		if len(survivors) == 0 {
			break
		}
		alive = survivors
	}
	return alive[0].origin, true
}
