// SPDX-License-Identifier: MIT

package unionfind

// UnionFind is a disjoint-set forest with path halving and union by size.
type UnionFind struct {
	parent []int // parent[x] == x for roots
	size   []int // valid for roots only: number of elements in the set
	count  int   // number of disjoint sets
}

// New returns n singleton sets {0}, {1}, …, {n-1}. A negative n is treated as 0.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the representative of the set containing x.
// x must lie in [0, Len()).
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		// Path halving: point x at its grandparent, then step there.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing a and b. It reports false when they were
// already the same set.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return true
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Members returns the elements of the set containing x in ascending order.
func (uf *UnionFind) Members(x int) []int {
	root := uf.Find(x)
	out := make([]int, 0, uf.size[root])
	for v := range uf.parent {
		if uf.Find(v) == root {
			out = append(out, v)
		}
	}

	return out
}
