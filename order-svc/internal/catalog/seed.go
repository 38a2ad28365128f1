package catalog

import (
	"time"

	"orderiq/order-svc/internal/domain"
)

// Seed loads the demo fixtures: an approved restaurant set, two sample menus
// and a small delivered-order history for the demo customer.
func (s *MemoryStore) Seed() {
	now := time.Now()

	restaurants := []domain.Restaurant{
		{
			ID: "rest1", Name: "Karachi Biryani House", Cuisine: "Pakistani",
			Address: "Lahore, Punjab", Phone: "03001234567", Rating: 4.8,
			TotalOrders: 450, Image: "/flavorful-biryani.png",
			Description: "Authentic Karachi biryani with traditional recipes passed down for generations",
			Status:      domain.RestaurantApproved,
		},
		{
			ID: "rest2", Name: "Italian Kitchen Express", Cuisine: "Italian",
			Address: "Islamabad, Federal", Phone: "03004567890", Rating: 4.5,
			TotalOrders: 320, Image: "/delicious-pizza.png",
			Description: "Fresh Italian pizzas and pastas prepared with imported ingredients",
			Status:      domain.RestaurantApproved,
		},
		{
			ID: "rest3", Name: "Dragon Palace", Cuisine: "Chinese",
			Address: "Karachi, Sindh", Phone: "03009876543", Rating: 4.6,
			TotalOrders: 380, Image: "/colorful-pasta-arrangement.png",
			Description: "Authentic Chinese cuisine with fast and fresh preparation",
			Status:      domain.RestaurantApproved,
		},
		{
			ID: "rest4", Name: "Tandoori Junction", Cuisine: "Indian",
			Address: "Faisalabad, Punjab", Phone: "03112233445", Rating: 4.7,
			TotalOrders: 520, Image: "/seekh-kabab.jpg",
			Description: "Delicious tandoori and grilled specialties cooked in traditional clay ovens",
			Status:      domain.RestaurantApproved,
		},
		{
			ID: "rest5", Name: "Kabab Corner", Cuisine: "Pakistani",
			Address: "Multan, Punjab", Phone: "03225566778", Rating: 4.4,
			TotalOrders: 290, Image: "/garlic-bread.png",
			Description: "Premium kebabs and grilled meats with aromatic spices",
			Status:      domain.RestaurantApproved,
		},
		{
			ID: "rest6", Name: "Thai Delights", Cuisine: "Thai",
			Address: "Rawalpindi, Punjab", Phone: "03334455667", Rating: 4.3,
			TotalOrders: 210, Image: "/naan-bread.png",
			Description: "Authentic Thai flavors bringing heat and spice to your table",
			Status:      domain.RestaurantApproved,
		},
	}

	menus := map[string][]domain.MenuItem{
		"rest1": {
			{ID: "m1", Name: "Biryani", Price: 350, Category: "Main Course", Image: "/flavorful-biryani.png", Stock: 45},
			{ID: "m2", Name: "Seekh Kabab", Price: 200, Category: "Appetizer", Image: "/seekh-kabab.jpg", Stock: 30},
			{ID: "m3", Name: "Naan", Price: 50, Category: "Bread", Image: "/naan-bread.png", Stock: 100},
		},
		"rest2": {
			{ID: "p1", Name: "Pizza Margherita", Price: 600, Category: "Pizza", Image: "/delicious-pizza.png", Stock: 15},
			{ID: "p2", Name: "Pasta Carbonara", Price: 550, Category: "Pasta", Image: "/colorful-pasta-arrangement.png", Stock: 12},
		},
	}

	orders := []domain.Order{
		{
			ID: "ORD001", CustomerID: "cust1", RestaurantID: "rest1",
			Items: []domain.OrderItem{
				{Name: "Biryani", Quantity: 2, Price: 350},
				{Name: "Raita", Quantity: 1, Price: 100},
			},
			TotalPrice: 800, Status: domain.OrderDelivered,
			CreatedAt: now.Add(-7 * 24 * time.Hour), LoyaltyPoints: 8,
		},
		{
			ID: "ORD002", CustomerID: "cust1", RestaurantID: "rest2",
			Items: []domain.OrderItem{
				{Name: "Pizza Margherita", Quantity: 1, Price: 600},
			},
			TotalPrice: 600, Status: domain.OrderDelivered,
			CreatedAt: now.Add(-3 * 24 * time.Hour), LoyaltyPoints: 6,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = restaurants
	s.menus = menus
	s.orders = orders
}
