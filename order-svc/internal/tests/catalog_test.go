package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orderiq/order-svc/internal/catalog"
	"orderiq/order-svc/internal/domain"
	"orderiq/order-svc/internal/mocks"
	"orderiq/order-svc/internal/notify"
)

func seededStore(n notify.Notifier) *catalog.MemoryStore {
	store := catalog.NewMemoryStore(n)
	store.Seed()
	return store
}

func TestLoyaltyPoints_DeliveredOnly(t *testing.T) {
	store := seededStore(nil)

	// Seeded: cust1 has two delivered orders worth 8 + 6 points.
	assert.Equal(t, 14, store.GetCustomerLoyaltyPoints("cust1"))

	// A fresh pending order must not contribute.
	_, err := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust1",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: "Naan", Quantity: 4, Price: 50}},
	})
	assert.NoError(t, err)
	assert.Equal(t, 14, store.GetCustomerLoyaltyPoints("cust1"))
	assert.Equal(t, 0, store.GetCustomerLoyaltyPoints("nobody"))
}

func TestAddOrder_TotalsAndLoyalty(t *testing.T) {
	store := seededStore(nil)

	order, err := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust9",
		RestaurantID: "rest1",
		Items: []domain.OrderItem{
			{Name: "Biryani", Quantity: 2, Price: 350},
			{Name: "Raita", Quantity: 1, Price: 100},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 800, order.TotalPrice)
	assert.Equal(t, 8, order.LoyaltyPoints)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.False(t, order.CreatedAt.IsZero())

	orders := store.GetCustomerOrders("cust9")
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestAddOrder_Validation(t *testing.T) {
	store := seededStore(nil)

	tests := []struct {
		name  string
		draft domain.Order
	}{
		{
			name:  "no restaurant",
			draft: domain.Order{Items: []domain.OrderItem{{Name: "x", Quantity: 1, Price: 1}}},
		},
		{
			name:  "no items",
			draft: domain.Order{RestaurantID: "rest1"},
		},
		{
			name: "zero quantity line",
			draft: domain.Order{
				RestaurantID: "rest1",
				Items:        []domain.OrderItem{{Name: "x", Quantity: 0, Price: 1}},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := store.AddOrder(context.Background(), testCase.draft)
			assert.ErrorIs(t, err, catalog.ErrInvalidOrder)
		})
	}
}

func TestAddOrder_EmitsConfirmation(t *testing.T) {
	notifier := new(mocks.Notifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.OrderConfirmation &&
			e.To == "customer@demo.com" &&
			e.Details["restaurantName"] == "Karachi Biryani House" &&
			e.Details["total"] == 700
	})).Return(nil).Once()

	store := seededStore(notifier)
	_, err := store.AddOrder(context.Background(), domain.Order{
		CustomerID:     "cust1",
		CustomerEmail:  "customer@demo.com",
		RestaurantID:   "rest1",
		RestaurantName: "Karachi Biryani House",
		Items:          []domain.OrderItem{{Name: "Biryani", Quantity: 2, Price: 350}},
	})

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestAddOrder_NotificationFailureDoesNotRollBack(t *testing.T) {
	notifier := new(mocks.Notifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(assert.AnError)

	store := seededStore(notifier)
	order, err := store.AddOrder(context.Background(), domain.Order{
		CustomerID:     "cust1",
		CustomerEmail:  "customer@demo.com",
		RestaurantID:   "rest1",
		RestaurantName: "Karachi Biryani House",
		Items:          []domain.OrderItem{{Name: "Naan", Quantity: 1, Price: 50}},
	})

	assert.NoError(t, err)
	assert.Len(t, store.GetCustomerOrders("cust1"), 3)
	assert.NotNil(t, order)
}

func TestAddOrder_NoEmailNoNotification(t *testing.T) {
	notifier := new(mocks.Notifier)

	store := seededStore(notifier)
	_, err := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust1",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: "Naan", Quantity: 1, Price: 50}},
	})

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatus_ForwardOnly(t *testing.T) {
	store := seededStore(nil)
	order, _ := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust1",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: "Biryani", Quantity: 1, Price: 350}},
	})

	updated, err := store.UpdateOrderStatus(context.Background(), order.ID, domain.OrderPreparing)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPreparing, updated.Status)

	// Regressions are rejected: the permissive reassignment of the old
	// behavior was a bug, not a contract.
	_, err = store.UpdateOrderStatus(context.Background(), order.ID, domain.OrderPending)
	assert.ErrorIs(t, err, catalog.ErrInvalidTransition)

	// Skipping pending -> delivered is also rejected.
	fresh, _ := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust1",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: "Naan", Quantity: 1, Price: 50}},
	})
	_, err = store.UpdateOrderStatus(context.Background(), fresh.ID, domain.OrderDelivered)
	assert.ErrorIs(t, err, catalog.ErrInvalidTransition)

	updated, err = store.UpdateOrderStatus(context.Background(), order.ID, domain.OrderDelivered)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderDelivered, updated.Status)

	// Delivered is terminal.
	_, err = store.UpdateOrderStatus(context.Background(), order.ID, domain.OrderPreparing)
	assert.ErrorIs(t, err, catalog.ErrInvalidTransition)
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	store := seededStore(nil)
	_, err := store.UpdateOrderStatus(context.Background(), "ORD-missing", domain.OrderPreparing)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUpdateOrderStatus_EmitsStatusEmail(t *testing.T) {
	notifier := new(mocks.Notifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.OrderConfirmation
	})).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.OrderStatusUpdate && e.Details["status"] == "preparing"
	})).Return(nil).Once()

	store := seededStore(notifier)
	order, _ := store.AddOrder(context.Background(), domain.Order{
		CustomerID:     "cust1",
		CustomerEmail:  "customer@demo.com",
		RestaurantID:   "rest1",
		RestaurantName: "Karachi Biryani House",
		Items:          []domain.OrderItem{{Name: "Biryani", Quantity: 1, Price: 350}},
	})

	_, err := store.UpdateOrderStatus(context.Background(), order.ID, domain.OrderPreparing)
	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestMenuCRUD(t *testing.T) {
	store := seededStore(nil)

	created, err := store.AddMenuItem("rest1", domain.MenuItem{
		Name: "Chicken Karahi", Price: 450, Category: "Main Course", Stock: 20,
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "itm-"))

	menu := store.GetRestaurantMenu("rest1")
	assert.Len(t, menu, 4)

	updated, err := store.UpdateMenuItem("rest1", created.ID, domain.MenuItem{
		Name: "Chicken Karahi", Price: 500, Category: "Main Course", Stock: 18,
	})
	assert.NoError(t, err)
	assert.Equal(t, 500, updated.Price)
	assert.Equal(t, created.ID, updated.ID)

	_, err = store.UpdateMenuItem("rest1", "itm-missing", domain.MenuItem{Name: "x"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.NoError(t, store.DeleteMenuItem("rest1", created.ID))
	assert.Len(t, store.GetRestaurantMenu("rest1"), 3)
	assert.ErrorIs(t, store.DeleteMenuItem("rest1", created.ID), catalog.ErrNotFound)

	// Unknown restaurant yields an empty menu, not a fault.
	assert.Empty(t, store.GetRestaurantMenu("rest-unknown"))
}

func TestUpdateMenuItem_RejectsInvalidValues(t *testing.T) {
	store := seededStore(nil)

	// A negative price or a blank name must not get into the menu through
	// the update path any more than through the add path.
	_, err := store.UpdateMenuItem("rest1", "m1", domain.MenuItem{
		Name: "Biryani", Price: -100, Category: "Main Course",
	})
	assert.Error(t, err)

	_, err = store.UpdateMenuItem("rest1", "m1", domain.MenuItem{
		Name: "", Price: 350, Category: "Main Course",
	})
	assert.Error(t, err)

	// The item is untouched and still orderable.
	menu := store.GetRestaurantMenu("rest1")
	assert.Equal(t, "Biryani", menu[0].Name)
	assert.Equal(t, 350, menu[0].Price)

	_, err = store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust1",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: menu[0].Name, Quantity: 1, Price: menu[0].Price}},
	})
	assert.NoError(t, err)
}

func TestAddMenuItem_RejectsInvalidValues(t *testing.T) {
	store := seededStore(nil)

	_, err := store.AddMenuItem("rest1", domain.MenuItem{Name: "", Price: 100})
	assert.Error(t, err)
	_, err = store.AddMenuItem("rest1", domain.MenuItem{Name: "Raita", Price: -1})
	assert.Error(t, err)
	assert.Len(t, store.GetRestaurantMenu("rest1"), 3)
}

func TestOrderSnapshotSurvivesMenuEdits(t *testing.T) {
	store := seededStore(nil)

	_, err := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust7",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: "Biryani", Quantity: 2, Price: 350}},
	})
	assert.NoError(t, err)

	// Doubling the menu price must not touch the placed order.
	_, err = store.UpdateMenuItem("rest1", "m1", domain.MenuItem{
		Name: "Biryani", Price: 700, Category: "Main Course", Stock: 45,
	})
	assert.NoError(t, err)

	stored := store.GetCustomerOrders("cust7")[0]
	assert.Equal(t, 700, stored.TotalPrice)
	assert.Equal(t, 350, stored.Items[0].Price)
}

func TestRestaurantStats(t *testing.T) {
	store := seededStore(nil)

	order, _ := store.AddOrder(context.Background(), domain.Order{
		CustomerID:   "cust2",
		RestaurantID: "rest1",
		Items:        []domain.OrderItem{{Name: "Naan", Quantity: 2, Price: 50}},
	})

	stats := store.GetRestaurantStats("rest1")
	assert.Equal(t, 2, stats.TotalOrders) // seeded ORD001 + the new one
	assert.Equal(t, 900, stats.TotalRevenue)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)

	_, err := store.UpdateOrderStatus(context.Background(), order.ID, domain.OrderPreparing)
	assert.NoError(t, err)
	stats = store.GetRestaurantStats("rest1")
	assert.Equal(t, 0, stats.PendingOrders)

	empty := store.GetRestaurantStats("rest-unknown")
	assert.Zero(t, empty.TotalOrders)
}

func TestRestaurantLifecycle(t *testing.T) {
	notifier := new(mocks.Notifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.RestaurantApproval && e.To == "owner@newplace.com"
	})).Return(nil).Once()

	store := seededStore(notifier)

	applied, err := store.AddRestaurant(domain.Restaurant{
		Name:  "New Place",
		Email: "owner@newplace.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.RestaurantPending, applied.Status)

	// Pending applications are visible in the public catalog until rejected.
	approved, err := store.ApproveRestaurant(context.Background(), applied.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.RestaurantApproved, approved.Status)
	notifier.AssertExpectations(t)

	// Approving twice fails: the application is no longer pending.
	_, err = store.ApproveRestaurant(context.Background(), applied.ID)
	assert.ErrorIs(t, err, catalog.ErrNotPending)
}

func TestRejectRestaurant_HiddenFromPublicReads(t *testing.T) {
	store := seededStore(nil)

	applied, _ := store.AddRestaurant(domain.Restaurant{Name: "Doomed Diner"})
	before := len(store.GetAllRestaurants())

	assert.NoError(t, store.RejectRestaurant(applied.ID))

	_, err := store.GetRestaurantByID(applied.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Len(t, store.GetAllRestaurants(), before-1)

	// History survives in the admin view.
	var seen bool
	for _, r := range store.ListApplications() {
		if r.ID == applied.ID {
			seen = true
			assert.Equal(t, domain.RestaurantRejected, r.Status)
		}
	}
	assert.True(t, seen)

	assert.ErrorIs(t, store.RejectRestaurant("rest-unknown"), catalog.ErrNotFound)
}
