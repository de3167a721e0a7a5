package identity

import (
	"testing"

	"bookledger/feature/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fprice(v float64) *float64 { return &v }

func order(userID int64, paid *float64) orders.Order {
	return orders.Order{UserID: userID, BookID: 1, Quantity: 1, PaidPrice: paid}
}

func TestResolve_TransitiveMerge(t *testing.T) {
	users := []orders.User{
		{ID: 1, Name: "Ann", Address: "Elm", Phone: "111", Email: "a@x"},
		{ID: 2, Name: "Ann", Address: "Elm", Phone: "111", Email: "b@x"},
		{ID: 3, Name: "Cat", Address: "Elm", Phone: "111", Email: "b@x"},
	}
	batch := []orders.Order{
		order(1, fprice(10)),
		order(2, fprice(20)),
		order(3, fprice(5)),
	}

	// 1 and 2 share name-address-phone, 2 and 3 share address-phone-email.
	// 1 and 3 share no key directly but must land in the same cluster.
	res := Resolve(batch, users)

	require.Len(t, res.Clusters, 1)
	c := res.Clusters[0]
	assert.Equal(t, "1,2,3", c.ID)
	assert.Equal(t, "Ann,Cat", c.Name)
	assert.Equal(t, "Elm", c.Address)
	assert.Equal(t, "111", c.Phone)
	assert.Equal(t, "a@x,b@x", c.Email)
	assert.InDelta(t, 35.0, c.PaidPrice, 0.001)
	assert.Equal(t, 1, res.UniqueUsers)
}

func TestResolve_NoMergeWhenKeysNeverAlign(t *testing.T) {
	// Both users are named Jo, but every 3-field key they produce differs,
	// so sharing one field is not enough to link them.
	users := []orders.User{
		{ID: 1, Name: "Jo", Phone: "555", Email: "jo@x"},
		{ID: 2, Name: "Jo", Address: "X", Email: "z@y"},
	}
	batch := []orders.Order{
		order(1, fprice(1)),
		order(2, fprice(2)),
	}

	res := Resolve(batch, users)

	assert.Len(t, res.Clusters, 2)
	assert.Equal(t, 2, res.UniqueUsers)
}

func TestResolve_SingletonForUnknownUser(t *testing.T) {
	// An order referencing a user absent from reference data keeps blank
	// fields and forms its own cluster.
	batch := []orders.Order{order(99, fprice(7))}

	res := Resolve(batch, nil)

	require.Len(t, res.Clusters, 1)
	c := res.Clusters[0]
	assert.Equal(t, "99", c.ID)
	assert.Empty(t, c.Name)
	assert.Empty(t, c.Email)
	assert.InDelta(t, 7.0, c.PaidPrice, 0.001)
}

func TestResolve_BestBuyerAndTieBreak(t *testing.T) {
	users := []orders.User{
		{ID: 1, Name: "Ann", Address: "Elm", Phone: "111", Email: "a@x"},
		{ID: 2, Name: "Bob", Address: "Oak", Phone: "222", Email: "b@x"},
		{ID: 3, Name: "Cid", Address: "Ash", Phone: "333", Email: "c@x"},
	}
	batch := []orders.Order{
		order(1, fprice(50)),
		order(2, fprice(50)),
		order(3, fprice(10)),
	}

	res := Resolve(batch, users)

	require.Len(t, res.Clusters, 3)
	// Equal revenue falls back to cluster id order.
	assert.Equal(t, "1", res.Clusters[0].ID)
	assert.Equal(t, "2", res.Clusters[1].ID)
	assert.Equal(t, "3", res.Clusters[2].ID)
	require.NotNil(t, res.BestBuyer)
	assert.Equal(t, "Ann", res.BestBuyer.Name)
}

func TestResolve_NilPaidCountsAsZero(t *testing.T) {
	users := []orders.User{
		{ID: 1, Name: "Ann", Address: "Elm", Phone: "111", Email: "a@x"},
	}
	batch := []orders.Order{
		order(1, fprice(12.5)),
		order(1, nil),
	}

	res := Resolve(batch, users)

	require.Len(t, res.Clusters, 1)
	assert.InDelta(t, 12.5, res.Clusters[0].PaidPrice, 0.001)
}

func TestResolve_Conservation(t *testing.T) {
	// The sum over clusters equals the sum of all non-nil paid prices.
	users := []orders.User{
		{ID: 1, Name: "Ann", Address: "Elm", Phone: "111", Email: "a@x"},
		{ID: 2, Name: "Ann", Address: "Elm", Phone: "111", Email: "b@x"},
		{ID: 3, Name: "Zed", Address: "Fir", Phone: "999", Email: "z@x"},
	}
	batch := []orders.Order{
		order(1, fprice(10)),
		order(2, fprice(20.25)),
		order(3, fprice(5.75)),
		order(3, nil),
	}

	res := Resolve(batch, users)

	var clusterTotal float64
	for _, c := range res.Clusters {
		clusterTotal += c.PaidPrice
	}
	assert.InDelta(t, 36.0, clusterTotal, 0.001)
}

func TestResolve_EmptyBatch(t *testing.T) {
	res := Resolve(nil, nil)
	assert.Empty(t, res.Clusters)
	assert.Zero(t, res.UniqueUsers)
	assert.Nil(t, res.BestBuyer)
}
