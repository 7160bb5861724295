// Package unionfind provides a map-based disjoint-set (union-find) structure
// over any comparable key.
//
// Elements are created lazily: Find on an unseen key treats it as a singleton
// group whose representative is the key itself. Find compresses every link it
// walks; Union links the representative of a's group under the representative
// of b's group without rank or size balancing, which is enough for the small
// groups produced by tube extraction.
//
// Complexity:
//
//   - Find:  amortized O(log n) without balancing, O(1) on compressed links.
//   - Union: two Finds plus O(1).
//   - Memory: O(n) for n distinct keys ever linked.
//
// A UnionFind is not safe for concurrent mutation.
package unionfind

// UnionFind is a disjoint-set forest keyed by K.
type UnionFind[K comparable] struct {
	parent map[K]K
}

// New returns an empty UnionFind.
func New[K comparable]() *UnionFind[K] {
	return &UnionFind[K]{parent: make(map[K]K)}
}

// Find returns the representative of a's group, compressing every link
// visited on the way to the root.
func (u *UnionFind[K]) Find(a K) K {
	p, ok := u.parent[a]
	if !ok || p == a {
		return a
	}
	root := u.Find(p)
	u.parent[a] = root
	return root
}

// Union merges the groups of a and b; the root of a's group is linked under
// the root of b's group.
func (u *UnionFind[K]) Union(a, b K) {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return
	}
	u.parent[ra] = rb
}

// Same reports whether a and b belong to the same group.
func (u *UnionFind[K]) Same(a, b K) bool {
	return u.Find(a) == u.Find(b)
}

// Groups partitions keys by representative, preserving the order in which
// keys are given inside each group. Keys never linked form singleton groups.
func (u *UnionFind[K]) Groups(keys []K) map[K][]K {
	out := make(map[K][]K)
	for _, k := range keys {
		r := u.Find(k)
		out[r] = append(out[r], k)
	}
	return out
}

// Len returns the number of keys that have ever been linked.
func (u *UnionFind[K]) Len() int {
	return len(u.parent)
}
