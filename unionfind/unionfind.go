// Package unionfind provides a path-compressed, union-by-rank disjoint-set
// forest, lifted out of prim_kruskal's inline DSU into a reusable type. It
// backs tdec's realisation search (spec.md §3's "union-find with path
// compression" invariant).
package unionfind

// DSU is a disjoint-set-union forest over the integers [0, n).
type DSU struct {
	parent []int
	rank   []int
}

// New builds a DSU with n singleton sets.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set, compressing the path.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing a and b, returning false if they were
// already the same set.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return true
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
