package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"orderiq/order-svc/internal/cart"
	"orderiq/order-svc/internal/catalog"
	"orderiq/order-svc/internal/domain"
	"orderiq/order-svc/internal/identity"
	"orderiq/order-svc/internal/nav"
	"orderiq/order-svc/internal/notify"
	"orderiq/order-svc/internal/service"
	"orderiq/order-svc/internal/session"
	"orderiq/order-svc/internal/storage"
	"orderiq/order-svc/internal/validate"
)

const tokenTTL = 24 * time.Hour

type Handler struct {
	Catalog   catalog.Store
	Sessions  *session.Store
	Identity  identity.Provider
	Profiles  ProfileRepository
	Cart      *cart.Cart
	QR        service.QRGenerator
	QRCache   QRStore
	Notifier  notify.Notifier
	JWTSecret string
}

func NewHandler(
	catalogStore catalog.Store,
	sessions *session.Store,
	provider identity.Provider,
	profiles ProfileRepository,
	basket *cart.Cart,
	qr service.QRGenerator,
	qrCache QRStore,
	notifier notify.Notifier,
	jwtSecret string,
) *Handler {
	return &Handler{
		Catalog:   catalogStore,
		Sessions:  sessions,
		Identity:  provider,
		Profiles:  profiles,
		Cart:      basket,
		QR:        qr,
		QRCache:   qrCache,
		Notifier:  notifier,
		JWTSecret: jwtSecret,
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Page surface: role-gated view resolution for every routable path.
	for _, path := range []string{
		"/", "/customer", "/restaurant", "/admin",
		"/auth", "/auth/admin",
		"/auth/customer/signin", "/auth/customer/signup",
		"/auth/restaurant/signin", "/auth/restaurant/signup",
	} {
		r.HandleFunc(path, h.resolvePage).Methods("GET")
	}
	r.HandleFunc("/generate/{restaurantId}", h.resolvePage).Methods("GET")

	// Auth
	r.HandleFunc("/api/auth/customer/signup", h.customerSignUp).Methods("POST")
	r.HandleFunc("/api/auth/customer/signin", h.signIn(domain.RoleCustomer)).Methods("POST")
	r.HandleFunc("/api/auth/restaurant/signup", h.restaurantSignUp).Methods("POST")
	r.HandleFunc("/api/auth/restaurant/signin", h.signIn(domain.RoleRestaurant)).Methods("POST")
	r.HandleFunc("/api/auth/admin/signin", h.signIn(domain.RoleAdmin)).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")

	// Public catalog
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	// Restaurant dashboard
	r.HandleFunc("/api/restaurants/{id}/stats",
		h.requireRole(domain.RoleRestaurant, h.getRestaurantStats)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu",
		h.requireRole(domain.RoleRestaurant, h.addMenuItem)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}",
		h.requireRole(domain.RoleRestaurant, h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/menu/{itemId}",
		h.requireRole(domain.RoleRestaurant, h.deleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/status",
		h.requireRole(domain.RoleRestaurant, h.updateOrderStatus)).Methods("PUT")

	// Cart / checkout
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/checkout",
		h.requireRole(domain.RoleCustomer, h.checkout)).Methods("POST")

	// Orders / loyalty
	r.HandleFunc("/api/orders", h.requireAuth(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/loyalty",
		h.requireRole(domain.RoleCustomer, h.getLoyaltyPoints)).Methods("GET")

	// Admin
	r.HandleFunc("/api/admin/applications",
		h.requireRole(domain.RoleAdmin, h.listApplications)).Methods("GET")
	r.HandleFunc("/api/admin/restaurants/{id}/approve",
		h.requireRole(domain.RoleAdmin, h.approveRestaurant)).Methods("POST")
	r.HandleFunc("/api/admin/restaurants/{id}/reject",
		h.requireRole(domain.RoleAdmin, h.rejectRestaurant)).Methods("POST")

	// Everything else falls back to home.
	r.PathPrefix("/").HandlerFunc(h.resolvePage).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// resolvePage runs the nav state machine for the requested path and renders a
// view descriptor, or redirects.
func (h *Handler) resolvePage(w http.ResponseWriter, r *http.Request) {
	principal := h.principalFrom(r)
	res := nav.Resolve(r.URL.Path, principal)
	if res.RedirectTo != "" {
		http.Redirect(w, r, res.RedirectTo, http.StatusFound)
		return
	}

	// Opening another restaurant's menu discards any prior cart.
	if res.Page == nav.PageRestaurantMenu {
		if bound := h.Cart.RestaurantID(); bound != "" && bound != res.RestaurantID {
			h.Cart.Clear()
		}
	}

	view := map[string]interface{}{
		"page": res.Page,
		"demo": res.Demo,
	}
	if res.RestaurantID != "" {
		view["restaurant_id"] = res.RestaurantID
	}
	writeJSON(w, http.StatusOK, view)
}

type signUpRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address"`
	Cuisine        string `json:"cuisine"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  domain.Principal `json:"user"`
}

func (h *Handler) customerSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validate.IsValidEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if report := validate.PasswordStrength(req.Password); report.Score < 2 {
		writeError(w, http.StatusBadRequest, "password too weak: "+report.Label)
		return
	}

	id, err := h.Identity.Create(req.Email, req.Password)
	if err != nil {
		writeError(w, identityStatus(err), err.Error())
		return
	}

	principal := domain.Principal{
		ID: id, Email: req.Email, Role: domain.RoleCustomer,
		Name: req.Name, Phone: req.Phone,
	}
	if err := h.insertProfile(principal); err != nil {
		writeError(w, http.StatusBadGateway, "failed to store profile: "+err.Error())
		return
	}

	h.Sessions.Signup(principal)
	notify.Emit(r.Context(), h.Notifier, notify.Event{
		Type:    notify.WelcomeCustomer,
		To:      principal.Email,
		Details: map[string]interface{}{"customerName": principal.Name},
	})
	h.respondAuth(w, principal)
}

func (h *Handler) restaurantSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validate.IsValidEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if req.RestaurantName == "" {
		writeError(w, http.StatusBadRequest, "restaurant name required")
		return
	}
	if report := validate.PasswordStrength(req.Password); report.Score < 2 {
		writeError(w, http.StatusBadRequest, "password too weak: "+report.Label)
		return
	}

	id, err := h.Identity.Create(req.Email, req.Password)
	if err != nil {
		writeError(w, identityStatus(err), err.Error())
		return
	}

	// The restaurant id is minted up front so the profile row can reference
	// it; the catalog record is only created once the profile is stored, so a
	// failed signup never leaves an ownerless application behind.
	restaurantID := catalog.NewRestaurantID()
	principal := domain.Principal{
		ID: id, Email: req.Email, Role: domain.RoleRestaurant,
		Name: req.Name, Phone: req.Phone,
		RestaurantID: restaurantID, RestaurantName: req.RestaurantName,
		Address: req.Address, Cuisine: req.Cuisine,
	}
	if err := h.insertProfile(principal); err != nil {
		writeError(w, http.StatusBadGateway, "failed to store profile: "+err.Error())
		return
	}

	// New restaurants enter the catalog as pending applications.
	rest, err := h.Catalog.AddRestaurant(domain.Restaurant{
		ID:      restaurantID,
		Name:    req.RestaurantName,
		Cuisine: req.Cuisine,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Status:  domain.RestaurantPending,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Sessions.Signup(principal)
	notify.Emit(r.Context(), h.Notifier, notify.Event{
		Type:    notify.WelcomeRestaurant,
		To:      principal.Email,
		Details: map[string]interface{}{"restaurantName": rest.Name},
	})
	h.respondAuth(w, principal)
}

// signIn authenticates against the identity collaborator and loads the stored
// profile; a role mismatch on the chosen form is rejected.
func (h *Handler) signIn(role domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		id, err := h.Identity.SignIn(req.Email, req.Password)
		if err != nil {
			writeError(w, identityStatus(err), err.Error())
			return
		}

		rec, err := h.Profiles.GetProfile(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		if rec.Role != role {
			writeError(w, http.StatusForbidden, "account is not registered for this role")
			return
		}

		principal := domain.Principal{
			ID: rec.ID, Email: rec.Email, Role: rec.Role,
			Name: rec.Name, Phone: rec.Phone,
			RestaurantID: rec.RestaurantID, RestaurantName: rec.RestaurantName,
			Address: rec.Address, Cuisine: rec.Cuisine,
		}
		h.Sessions.Login(principal)
		h.respondAuth(w, principal)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout()
	h.Cart.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
}

func (h *Handler) insertProfile(p domain.Principal) error {
	return h.Profiles.InsertProfile(&storage.ProfileRecord{
		ID: p.ID, Email: p.Email, Role: p.Role, Name: p.Name, Phone: p.Phone,
		RestaurantID: p.RestaurantID, RestaurantName: p.RestaurantName,
		Address: p.Address, Cuisine: p.Cuisine,
	})
}

func (h *Handler) respondAuth(w http.ResponseWriter, principal domain.Principal) {
	token, err := session.GenerateToken(principal, h.JWTSecret, tokenTTL)
	if err != nil {
		log.Printf("failed to sign session token: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: principal})
}

func identityStatus(err error) int {
	switch {
	case errors.Is(err, identity.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, identity.ErrWeakCredential):
		return http.StatusBadRequest
	case errors.Is(err, identity.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, identity.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.GetAllRestaurants())
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Catalog.GetRestaurantByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.GetRestaurantMenu(mux.Vars(r)["id"]))
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	if _, err := h.Catalog.GetRestaurantByID(restaurantID); err != nil {
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	if h.QRCache != nil {
		key := h.QRCache.QRKey(restaurantID)
		if png, err := h.QRCache.Get(r.Context(), key); err == nil && len(png) > 0 {
			servePNG(w, png)
			return
		}
	}

	png, err := h.QR.Generate(restaurantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}
	if h.QRCache != nil {
		if err := h.QRCache.Set(r.Context(), h.QRCache.QRKey(restaurantID), png); err != nil {
			log.Printf("failed to cache QR code for %s: %v", restaurantID, err)
		}
	}
	servePNG(w, png)
}

func servePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	restaurantID := mux.Vars(r)["id"]
	if p.RestaurantID != restaurantID {
		writeError(w, http.StatusForbidden, "not your restaurant")
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.GetRestaurantStats(restaurantID))
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	restaurantID := mux.Vars(r)["id"]
	if p.RestaurantID != restaurantID {
		writeError(w, http.StatusForbidden, "not your restaurant")
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	created, err := h.Catalog.AddMenuItem(restaurantID, item)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	vars := mux.Vars(r)
	if p.RestaurantID != vars["id"] {
		writeError(w, http.StatusForbidden, "not your restaurant")
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	updated, err := h.Catalog.UpdateMenuItem(vars["id"], vars["itemId"], item)
	if err != nil {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	vars := mux.Vars(r)
	if p.RestaurantID != vars["id"] {
		writeError(w, http.StatusForbidden, "not your restaurant")
		return
	}
	if err := h.Catalog.DeleteMenuItem(vars["id"], vars["itemId"]); err != nil {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type cartAddRequest struct {
	RestaurantID string `json:"restaurant_id"`
	ItemID       string `json:"item_id"`
}

type cartView struct {
	RestaurantID string      `json:"restaurant_id,omitempty"`
	Lines        []cart.Line `json:"lines"`
	Subtotal     int         `json:"subtotal"`
}

func (h *Handler) cartViewNow() cartView {
	return cartView{
		RestaurantID: h.Cart.RestaurantID(),
		Lines:        h.Cart.Lines(),
		Subtotal:     h.Cart.Subtotal(),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartViewNow())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var found *domain.MenuItem
	for _, item := range h.Catalog.GetRestaurantMenu(req.RestaurantID) {
		if item.ID == req.ItemID {
			it := item
			found = &it
			break
		}
	}
	if found == nil {
		writeError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	if err := h.Cart.AddItem(req.RestaurantID, *found); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.cartViewNow())
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h.Cart.UpdateQuantity(mux.Vars(r)["itemId"], req.Quantity)
	writeJSON(w, http.StatusOK, h.cartViewNow())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Remove(mux.Vars(r)["itemId"])
	writeJSON(w, http.StatusOK, h.cartViewNow())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// checkout confirms the cart as an order. The role gate upstream guarantees a
// customer principal; demo mode never reaches this point. The cart is cleared
// only once the store accepts the order; a refused draft leaves it untouched.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	snapshot, err := h.Cart.CheckoutSnapshot()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	restaurantName := ""
	if rest, err := h.Catalog.GetRestaurantByID(snapshot.RestaurantID); err == nil {
		restaurantName = rest.Name
	}

	order, err := h.Catalog.AddOrder(r.Context(), domain.Order{
		CustomerID:     p.ID,
		CustomerEmail:  p.Email,
		RestaurantID:   snapshot.RestaurantID,
		RestaurantName: restaurantName,
		Items:          snapshot.Items,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Cart.Clear()
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	switch p.Role {
	case domain.RoleCustomer:
		writeJSON(w, http.StatusOK, h.Catalog.GetCustomerOrders(p.ID))
	case domain.RoleRestaurant:
		writeJSON(w, http.StatusOK, h.Catalog.GetRestaurantOrders(p.RestaurantID))
	case domain.RoleAdmin:
		writeJSON(w, http.StatusOK, h.Catalog.GetAllOrders())
	default:
		writeError(w, http.StatusForbidden, "insufficient role")
	}
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	orderID := mux.Vars(r)["id"]
	owned := false
	for _, o := range h.Catalog.GetRestaurantOrders(p.RestaurantID) {
		if o.ID == orderID {
			owned = true
			break
		}
	}
	if !owned {
		writeError(w, http.StatusForbidden, "not your order")
		return
	}

	order, err := h.Catalog.UpdateOrderStatus(r.Context(), orderID, req.Status)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
		return
	case errors.Is(err, catalog.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getLoyaltyPoints(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	writeJSON(w, http.StatusOK, map[string]int{
		"loyalty_points": h.Catalog.GetCustomerLoyaltyPoints(p.ID),
	})
}

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	writeJSON(w, http.StatusOK, h.Catalog.ListApplications())
}

func (h *Handler) approveRestaurant(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	rest, err := h.Catalog.ApproveRestaurant(r.Context(), mux.Vars(r)["id"])
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	case errors.Is(err, catalog.ErrNotPending):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) rejectRestaurant(w http.ResponseWriter, r *http.Request, p *domain.Principal) {
	err := h.Catalog.RejectRestaurant(mux.Vars(r)["id"])
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "Restaurant not found")
		return
	case errors.Is(err, catalog.ErrNotPending):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
