package domain

import "time"

// Role is the closed set of principal kinds. Dispatch on it with exhaustive
// switches; never compare raw strings outside this package.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated identity driving role gating. Exactly one
// principal is active per session.
type Principal struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	RestaurantID   string `json:"restaurant_id,omitempty"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	Address        string `json:"address,omitempty"`
	Cuisine        string `json:"cuisine,omitempty"`
}

type Restaurant struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Cuisine     string           `json:"cuisine"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email,omitempty"`
	Rating      float64          `json:"rating"`
	TotalOrders int              `json:"total_orders"`
	Image       string           `json:"image,omitempty"`
	Description string           `json:"description"`
	Status      RestaurantStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// MenuItem prices are integer currency units. Stock is informational only and
// is not decremented by order placement.
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Image    string `json:"image,omitempty"`
}

// OrderItem is a snapshot of a menu item at order time. Later menu edits never
// change it, so historical totals stay correct.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

type Order struct {
	ID             string      `json:"id"`
	CustomerID     string      `json:"customer_id"`
	CustomerEmail  string      `json:"customer_email,omitempty"`
	RestaurantID   string      `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name,omitempty"`
	Items          []OrderItem `json:"items"`
	TotalPrice     int         `json:"total_price"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	LoyaltyPoints  int         `json:"loyalty_points"`
}

// RestaurantStats is derived on every read, never cached.
type RestaurantStats struct {
	TotalOrders     int `json:"total_orders"`
	TotalRevenue    int `json:"total_revenue"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
}

// LoyaltyPointsFor computes the points awarded for an order total. Points only
// count toward a customer's balance once the order is delivered.
func LoyaltyPointsFor(total int) int {
	if total < 0 {
		return 0
	}
	return total / 100
}
