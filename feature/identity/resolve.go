package identity

import (
	"sort"
	"strconv"
	"strings"

	"bookledger/feature/orders"
)

// keySeparator joins the field values of a similarity key.
const keySeparator = "-"

// fieldSubsets enumerates the four 3-element subsets of the identity fields
// {name, address, phone, email}, indexed into the fields array of a profile.
var fieldSubsets = [4][3]int{
	{0, 1, 2}, // name, address, phone
	{0, 1, 3}, // name, address, email
	{0, 2, 3}, // name, phone, email
	{1, 2, 3}, // address, phone, email
}

// Cluster is one resolved real-world identity: the full connected component
// of users linked by shared similarity keys, with per-field unions of their
// distinct non-blank values and the revenue attributed to the whole set.
type Cluster struct {
	// ID is the sorted, comma-joined set of member user ids.
	ID      string
	Name    string
	Address string
	Phone   string
	Email   string
	// PaidPrice sums paid_price over every order of every member, with nil
	// contributions counted as zero.
	PaidPrice float64

	// Members holds the raw member user ids, sorted numerically.
	Members []int64
}

// Result is the output of one identity resolution pass.
type Result struct {
	// Clusters is sorted by PaidPrice descending, cluster id ascending on ties.
	Clusters []Cluster
	// UniqueUsers is the cluster count, the post-dedup unique customer count.
	UniqueUsers int
	// BestBuyer is the top cluster by paid price, nil when there are no orders.
	BestBuyer *Cluster
}

// profile is the identity-field view of one user id as seen by the batch.
// Users absent from the reference data keep all fields blank.
type profile struct {
	id     int64
	fields [4]string // name, address, phone, email
}

// Resolve joins the enriched orders to the user reference data, links user
// ids through shared similarity keys, and merges the resulting connected
// components into clusters. Linking is transitive: A-B and B-C merge A, B and
// C even when A and C share no key directly.
func Resolve(batch []orders.Order, users []orders.User) Result {
	byID := make(map[int64]orders.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	// One profile per distinct user id appearing in the batch. The similarity
	// keys depend only on reference fields, so repeated orders add nothing.
	profiles := make(map[int64]profile)
	for _, o := range batch {
		if _, seen := profiles[o.UserID]; seen {
			continue
		}
		p := profile{id: o.UserID}
		if u, ok := byID[o.UserID]; ok {
			p.fields = [4]string{u.Name, u.Address, u.Phone, u.Email}
		}
		profiles[o.UserID] = p
	}

	uf := newUnionFind()
	groups := make(map[string][]int64)
	for id, p := range profiles {
		uf.add(id)
		for _, subset := range fieldSubsets {
			key := similarityKey(p.fields, subset)
			if key == "" {
				continue
			}
			groups[key] = append(groups[key], id)
		}
	}
	for _, ids := range groups {
		for _, id := range ids[1:] {
			uf.union(ids[0], id)
		}
	}

	// Revenue per user id, nil paid prices contributing zero.
	paidByUser := make(map[int64]float64)
	for i := range batch {
		paidByUser[batch[i].UserID] += batch[i].PaidOrZero()
	}

	var clusters []Cluster
	for _, members := range uf.components() {
		clusters = append(clusters, buildCluster(members, profiles, paidByUser))
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].PaidPrice != clusters[j].PaidPrice {
			return clusters[i].PaidPrice > clusters[j].PaidPrice
		}
		return clusters[i].ID < clusters[j].ID
	})

	res := Result{Clusters: clusters, UniqueUsers: len(clusters)}
	if len(clusters) > 0 {
		res.BestBuyer = &clusters[0]
	}
	return res
}

// similarityKey joins the subset's non-blank values. An all-blank subset
// yields the empty string and must not link anybody.
func similarityKey(fields [4]string, subset [3]int) string {
	parts := make([]string, 0, 3)
	for _, idx := range subset {
		if v := strings.TrimSpace(fields[idx]); v != "" {
			parts = append(parts, fields[idx])
		}
	}
	return strings.Join(parts, keySeparator)
}

func buildCluster(members []int64, profiles map[int64]profile, paidByUser map[int64]float64) Cluster {
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	ids := make([]string, len(members))
	var fieldSets [4]map[string]struct{}
	for i := range fieldSets {
		fieldSets[i] = make(map[string]struct{})
	}

	c := Cluster{Members: members}
	for i, id := range members {
		ids[i] = strconv.FormatInt(id, 10)
		c.PaidPrice += paidByUser[id]
		for f, v := range profiles[id].fields {
			if v != "" {
				fieldSets[f][v] = struct{}{}
			}
		}
	}

	// Id strings sort lexicographically, matching the cluster id format.
	sort.Strings(ids)
	c.ID = strings.Join(ids, ",")
	c.Name = joinSorted(fieldSets[0])
	c.Address = joinSorted(fieldSets[1])
	c.Phone = joinSorted(fieldSets[2])
	c.Email = joinSorted(fieldSets[3])
	return c
}

func joinSorted(set map[string]struct{}) string {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ",")
}
