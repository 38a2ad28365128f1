// Package cart holds the transient per-browsing-session cart. Nothing here is
// persisted; the cart dies on successful checkout or clear.
package cart

import (
	"errors"
	"sort"
	"sync"

	"orderiq/order-svc/internal/domain"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrRestaurantMismatch = errors.New("cart already holds items from another restaurant")
)

// Line is one cart entry: a menu item snapshot plus a quantity.
type Line struct {
	Item     domain.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Checkout is the snapshot handed to the order store on confirmation. The
// subtotal is computed live at confirmation time, never carried stale.
type Checkout struct {
	RestaurantID string             `json:"restaurant_id"`
	Items        []domain.OrderItem `json:"items"`
	Subtotal     int                `json:"subtotal"`
}

// Cart accumulates line items against exactly one restaurant at a time.
// Adding an item from a different restaurant is refused; callers must Clear
// first.
type Cart struct {
	mu           sync.Mutex
	restaurantID string
	lines        map[string]*Line
}

func New() *Cart {
	return &Cart{lines: map[string]*Line{}}
}

// AddItem inserts a snapshot with quantity 1, or bumps the quantity when the
// item is already present.
func (c *Cart) AddItem(restaurantID string, item domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) > 0 && c.restaurantID != restaurantID {
		return ErrRestaurantMismatch
	}
	c.restaurantID = restaurantID

	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return nil
	}
	c.lines[item.ID] = &Line{Item: item, Quantity: 1}
	return nil
}

func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lines, itemID)
}

// UpdateQuantity replaces the quantity; zero or negative removes the entry.
func (c *Cart) UpdateQuantity(itemID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		delete(c.lines, itemID)
		return
	}
	if line, ok := c.lines[itemID]; ok {
		line.Quantity = qty
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = map[string]*Line{}
	c.restaurantID = ""
}

// RestaurantID reports which restaurant the cart is bound to, empty when the
// cart is empty.
func (c *Cart) RestaurantID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lines) == 0 {
		return ""
	}
	return c.restaurantID
}

// Lines returns the entries in a stable item-id order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}

// Subtotal is the live sum of price x quantity over the current contents.
func (c *Cart) Subtotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() int {
	sum := 0
	for _, line := range c.lines {
		sum += line.Item.Price * line.Quantity
	}
	return sum
}

// CheckoutSnapshot packages the cart for order placement. An empty cart
// refuses with ErrEmptyCart. The cart itself is left intact: the caller clears
// it only once the order is accepted, so a refused order never costs the
// customer their cart. Requiring authentication before forwarding the snapshot
// is also the caller's job.
func (c *Cart) CheckoutSnapshot() (*Checkout, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}

	snapshot := &Checkout{
		RestaurantID: c.restaurantID,
		Subtotal:     c.subtotalLocked(),
	}
	ids := make([]string, 0, len(c.lines))
	for id := range c.lines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		line := c.lines[id]
		snapshot.Items = append(snapshot.Items, domain.OrderItem{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	return snapshot, nil
}
