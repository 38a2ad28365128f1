package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderiq/order-svc/internal/cart"
	"orderiq/order-svc/internal/domain"
)

var (
	biryani = domain.MenuItem{ID: "m1", Name: "Biryani", Price: 350}
	naan    = domain.MenuItem{ID: "m3", Name: "Naan", Price: 50}
	pizza   = domain.MenuItem{ID: "p1", Name: "Pizza Margherita", Price: 600}
)

func TestCart_AddItemAccumulates(t *testing.T) {
	c := cart.New()

	assert.NoError(t, c.AddItem("rest1", biryani))
	assert.NoError(t, c.AddItem("rest1", biryani))
	assert.NoError(t, c.AddItem("rest1", naan))

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "m1", lines[0].Item.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 750, c.Subtotal())
	assert.Equal(t, "rest1", c.RestaurantID())
}

func TestCart_RestaurantMismatch(t *testing.T) {
	c := cart.New()
	assert.NoError(t, c.AddItem("rest1", biryani))

	err := c.AddItem("rest2", pizza)
	assert.ErrorIs(t, err, cart.ErrRestaurantMismatch)
	assert.Len(t, c.Lines(), 1)

	// After clearing, the other restaurant is accepted.
	c.Clear()
	assert.NoError(t, c.AddItem("rest2", pizza))
	assert.Equal(t, "rest2", c.RestaurantID())
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := cart.New()
	_ = c.AddItem("rest1", biryani)
	_ = c.AddItem("rest1", naan)

	c.UpdateQuantity("m1", 3)
	assert.Equal(t, 1100, c.Subtotal())

	// Zero and negative both remove the line.
	c.UpdateQuantity("m1", 0)
	assert.Len(t, c.Lines(), 1)
	c.UpdateQuantity("m3", -5)
	assert.Empty(t, c.Lines())
	assert.Equal(t, "", c.RestaurantID())

	// Unknown id is a no-op.
	c.UpdateQuantity("ghost", 2)
	assert.Empty(t, c.Lines())
}

func TestCart_Remove(t *testing.T) {
	c := cart.New()
	_ = c.AddItem("rest1", biryani)
	_ = c.AddItem("rest1", naan)

	c.Remove("m3")
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 350, c.Subtotal())
}

func TestCart_CheckoutSnapshot(t *testing.T) {
	c := cart.New()
	_ = c.AddItem("rest1", biryani)
	_ = c.AddItem("rest1", biryani)
	_ = c.AddItem("rest1", naan)

	snap, err := c.CheckoutSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, "rest1", snap.RestaurantID)
	assert.Equal(t, 750, snap.Subtotal)
	assert.Equal(t, []domain.OrderItem{
		{Name: "Biryani", Quantity: 2, Price: 350},
		{Name: "Naan", Quantity: 1, Price: 50},
	}, snap.Items)

	// Snapshotting leaves the cart intact: if the order is refused the
	// customer keeps their cart. The caller clears on acceptance.
	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, 750, c.Subtotal())

	// A second snapshot is identical.
	again, err := c.CheckoutSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, snap, again)

	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Zero(t, c.Subtotal())
	assert.Equal(t, "", c.RestaurantID())
}

func TestCart_CheckoutEmpty(t *testing.T) {
	c := cart.New()
	snap, err := c.CheckoutSnapshot()
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Nil(t, snap)
}

func TestCart_SnapshotIsolatedFromLaterEdits(t *testing.T) {
	c := cart.New()
	item := biryani
	_ = c.AddItem("rest1", item)

	snap, err := c.CheckoutSnapshot()
	assert.NoError(t, err)

	// Mutating the source item after checkout must not leak into the
	// snapshot: it captured name, price and quantity by value.
	item.Price = 9999
	assert.Equal(t, 350, snap.Items[0].Price)
}
