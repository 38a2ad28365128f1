package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"orderiq/order-svc/internal/domain"
	"orderiq/order-svc/internal/notify"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidOrder      = errors.New("invalid order payload")
	ErrNotPending        = errors.New("restaurant application is not pending")
)

// Store is the catalog/order contract. The in-memory implementation below is
// the primary backend; the interface keeps alternates (remote API-backed)
// swappable for tests.
type Store interface {
	GetCustomerOrders(customerID string) []domain.Order
	GetRestaurantOrders(restaurantID string) []domain.Order
	GetAllOrders() []domain.Order
	GetCustomerLoyaltyPoints(customerID string) int
	AddOrder(ctx context.Context, draft domain.Order) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)

	GetRestaurantMenu(restaurantID string) []domain.MenuItem
	AddMenuItem(restaurantID string, item domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(restaurantID, itemID string, updated domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(restaurantID, itemID string) error

	GetAllRestaurants() []domain.Restaurant
	GetRestaurantByID(restaurantID string) (*domain.Restaurant, error)
	GetRestaurantStats(restaurantID string) domain.RestaurantStats
	AddRestaurant(r domain.Restaurant) (*domain.Restaurant, error)
	ListApplications() []domain.Restaurant
	ApproveRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
	RejectRestaurant(restaurantID string) error
}

// MemoryStore holds restaurants, per-restaurant menus and the order ledger.
// All reads are derived on demand, never cached. Notifications leave through
// the Notifier boundary and are best-effort: a delivery failure is logged and
// the primary mutation stands.
type MemoryStore struct {
	mu          sync.RWMutex
	orders      []domain.Order
	menus       map[string][]domain.MenuItem
	restaurants []domain.Restaurant
	notifier    notify.Notifier
}

func NewMemoryStore(notifier notify.Notifier) *MemoryStore {
	return &MemoryStore{
		menus:    map[string][]domain.MenuItem{},
		notifier: notifier,
	}
}

func (s *MemoryStore) GetCustomerOrders(customerID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (s *MemoryStore) GetRestaurantOrders(restaurantID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.RestaurantID == restaurantID {
			out = append(out, o)
		}
	}
	return out
}

func (s *MemoryStore) GetAllOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// GetCustomerLoyaltyPoints sums points over delivered orders only.
func (s *MemoryStore) GetCustomerLoyaltyPoints(customerID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := 0
	for _, o := range s.orders {
		if o.CustomerID == customerID && o.Status == domain.OrderDelivered {
			sum += o.LoyaltyPoints
		}
	}
	return sum
}

// AddOrder assigns a unique id, stamps creation time, computes loyalty points
// from the snapshot total and appends to the ledger. When the draft carries a
// customer email and restaurant name, an order-confirmation notification is
// emitted; its failure never rolls back the order.
func (s *MemoryStore) AddOrder(ctx context.Context, draft domain.Order) (*domain.Order, error) {
	if draft.RestaurantID == "" || len(draft.Items) == 0 {
		return nil, ErrInvalidOrder
	}

	total := 0
	for _, item := range draft.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			return nil, ErrInvalidOrder
		}
		total += item.Price * item.Quantity
	}

	order := draft
	order.ID = "ORD-" + uuid.NewString()
	order.CreatedAt = time.Now()
	order.TotalPrice = total
	order.Status = domain.OrderPending
	order.LoyaltyPoints = domain.LoyaltyPointsFor(total)

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	if order.CustomerEmail != "" && order.RestaurantName != "" {
		notify.Emit(ctx, s.notifier, notify.Event{
			Type: notify.OrderConfirmation,
			To:   order.CustomerEmail,
			Details: map[string]interface{}{
				"orderId":        order.ID,
				"restaurantName": order.RestaurantName,
				"total":          order.TotalPrice,
				"estimatedTime":  "30-45 mins",
			},
		})
	}

	return &order, nil
}

// UpdateOrderStatus enforces the forward-only lifecycle
// pending -> preparing -> delivered. Regressions and skips are rejected.
func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	s.mu.Lock()
	var updated *domain.Order
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.CanTransition(status) {
			s.mu.Unlock()
			return nil, ErrInvalidTransition
		}
		s.orders[i].Status = status
		o := s.orders[i]
		updated = &o
		break
	}
	s.mu.Unlock()

	if updated == nil {
		return nil, ErrNotFound
	}

	if updated.CustomerEmail != "" {
		notify.Emit(ctx, s.notifier, notify.Event{
			Type: notify.OrderStatusUpdate,
			To:   updated.CustomerEmail,
			Details: map[string]interface{}{
				"orderId": updated.ID,
				"status":  string(updated.Status),
			},
		})
	}

	return updated, nil
}

func (s *MemoryStore) GetRestaurantMenu(restaurantID string) []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.menus[restaurantID]
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}

func (s *MemoryStore) AddMenuItem(restaurantID string, item domain.MenuItem) (*domain.MenuItem, error) {
	if item.Name == "" || item.Price < 0 {
		return nil, errors.New("invalid menu item")
	}
	item.ID = "itm-" + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus[restaurantID] = append(s.menus[restaurantID], item)
	return &item, nil
}

func (s *MemoryStore) UpdateMenuItem(restaurantID, itemID string, updated domain.MenuItem) (*domain.MenuItem, error) {
	if updated.Name == "" || updated.Price < 0 {
		return nil, errors.New("invalid menu item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.menus[restaurantID]
	for i := range items {
		if items[i].ID == itemID {
			updated.ID = itemID
			items[i] = updated
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteMenuItem(restaurantID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.menus[restaurantID]
	for i := range items {
		if items[i].ID == itemID {
			s.menus[restaurantID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// GetAllRestaurants returns the public catalog: everything except rejected
// applications.
func (s *MemoryStore) GetAllRestaurants() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Restaurant
	for _, r := range s.restaurants {
		if r.Status != domain.RestaurantRejected {
			out = append(out, r)
		}
	}
	return out
}

func (s *MemoryStore) GetRestaurantByID(restaurantID string) (*domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.restaurants {
		if r.ID == restaurantID && r.Status != domain.RestaurantRejected {
			rest := r
			return &rest, nil
		}
	}
	return nil, ErrNotFound
}

// GetRestaurantStats derives counters from the ledger on every call.
func (s *MemoryStore) GetRestaurantStats(restaurantID string) domain.RestaurantStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stats domain.RestaurantStats
	for _, o := range s.orders {
		if o.RestaurantID != restaurantID {
			continue
		}
		stats.TotalOrders++
		stats.TotalRevenue += o.TotalPrice
		switch o.Status {
		case domain.OrderPending:
			stats.PendingOrders++
		case domain.OrderDelivered:
			stats.CompletedOrders++
		}
	}
	return stats
}

// NewRestaurantID mints an id in the catalog's scheme. Callers that need the
// id before the record exists (profile rows keyed by it) mint it themselves
// and pass it through AddRestaurant.
func NewRestaurantID() string {
	return "rest-" + uuid.NewString()
}

// AddRestaurant registers a new application. Signups start pending and only
// become publicly orderable once an admin approves them.
func (s *MemoryStore) AddRestaurant(r domain.Restaurant) (*domain.Restaurant, error) {
	if r.Name == "" {
		return nil, errors.New("restaurant name required")
	}
	if r.ID == "" {
		r.ID = NewRestaurantID()
	}
	if !r.Status.Valid() {
		r.Status = domain.RestaurantPending
	}
	r.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = append(s.restaurants, r)
	return &r, nil
}

// ListApplications is the admin view: every restaurant record regardless of
// status, rejected history included.
func (s *MemoryStore) ListApplications() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out
}

func (s *MemoryStore) ApproveRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	s.mu.Lock()
	var approved *domain.Restaurant
	for i := range s.restaurants {
		if s.restaurants[i].ID != restaurantID {
			continue
		}
		if s.restaurants[i].Status != domain.RestaurantPending {
			s.mu.Unlock()
			return nil, ErrNotPending
		}
		s.restaurants[i].Status = domain.RestaurantApproved
		r := s.restaurants[i]
		approved = &r
		break
	}
	s.mu.Unlock()

	if approved == nil {
		return nil, ErrNotFound
	}

	if approved.Email != "" {
		notify.Emit(ctx, s.notifier, notify.Event{
			Type: notify.RestaurantApproval,
			To:   approved.Email,
			Details: map[string]interface{}{
				"restaurantName": approved.Name,
				"approved":       true,
			},
		})
	}

	return approved, nil
}

// RejectRestaurant flips the application to rejected. The record survives for
// history but disappears from all public reads.
func (s *MemoryStore) RejectRestaurant(restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID != restaurantID {
			continue
		}
		if s.restaurants[i].Status != domain.RestaurantPending {
			return ErrNotPending
		}
		s.restaurants[i].Status = domain.RestaurantRejected
		return nil
	}
	return ErrNotFound
}

var _ Store = (*MemoryStore)(nil)
