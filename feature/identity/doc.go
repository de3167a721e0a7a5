// Package identity deduplicates customer records across a batch of orders.
//
// Human-entered user rows drift: the same person appears under several ids
// with slightly different subsets of name, address, phone and email filled
// in. Two ids are linked whenever they share an identical non-empty
// similarity key for any of the four 3-field combinations of those fields,
// and linked ids are merged transitively into one cluster per connected
// component.
//
// Matching is exact-string after normalization, not edit-distance based; a
// typo in a shared field keeps two records apart on that key.
package identity
