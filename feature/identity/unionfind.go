package identity

// unionFind is a disjoint-set structure over user ids with path compression
// and union by size. It replaces building an explicit similarity edge list:
// every group of users sharing a key is unioned in one sweep, which gives the
// same connected components in near-linear time.
type unionFind struct {
	parent map[int64]int64
	size   map[int64]int
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[int64]int64),
		size:   make(map[int64]int),
	}
}

// add registers an id as its own singleton set if unseen.
func (u *unionFind) add(id int64) {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
		u.size[id] = 1
	}
}

// find returns the set representative for id, compressing the path.
func (u *unionFind) find(id int64) int64 {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		id, u.parent[id] = u.parent[id], root
	}
	return root
}

// union merges the sets containing a and b.
func (u *unionFind) union(a, b int64) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
}

// components groups every registered id by its set representative.
func (u *unionFind) components() map[int64][]int64 {
	comps := make(map[int64][]int64)
	for id := range u.parent {
		root := u.find(id)
		comps[root] = append(comps[root], id)
	}
	return comps
}
