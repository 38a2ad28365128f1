package domain

// OrderStatus follows a forward-only lifecycle: pending -> preparing -> delivered.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderDelivered:
		return true
	}
	return false
}

// CanTransition reports whether moving to next is a legal forward step.
// Regressions and skips are rejected.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderPreparing
	case OrderPreparing:
		return next == OrderDelivered
	}
	return false
}

// RestaurantStatus models the application lifecycle: pending -> approved | rejected.
// Rejection is a status transition, not a delete; the record stays for history.
type RestaurantStatus string

const (
	RestaurantPending  RestaurantStatus = "pending"
	RestaurantApproved RestaurantStatus = "approved"
	RestaurantRejected RestaurantStatus = "rejected"
)

func (s RestaurantStatus) Valid() bool {
	switch s {
	case RestaurantPending, RestaurantApproved, RestaurantRejected:
		return true
	}
	return false
}
