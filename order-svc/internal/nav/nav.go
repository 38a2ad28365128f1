// Package nav is the role-gated page state machine: it maps routable paths and
// the current principal to the page to render, or to a redirect.
package nav

import (
	"strings"

	"orderiq/order-svc/internal/domain"
)

type Page string

const (
	PageHome                Page = "home"
	PageCustomerDashboard   Page = "customer-dashboard"
	PageRestaurantDashboard Page = "restaurant-dashboard"
	PageAdminDashboard      Page = "admin-dashboard"
	PageAuthChoice          Page = "auth-choice"
	PageCustomerSignIn      Page = "customer-signin"
	PageCustomerSignUp      Page = "customer-signup"
	PageRestaurantSignIn    Page = "restaurant-signin"
	PageRestaurantSignUp    Page = "restaurant-signup"
	PageAdminSignIn         Page = "admin-signin"
	PageRestaurantMenu      Page = "restaurant-menu"
)

// Resolution is either a page to render or a redirect to another path.
type Resolution struct {
	Page       Page
	RedirectTo string
	// RestaurantID is set for the deep-link menu page.
	RestaurantID string
	// Demo marks an unauthenticated view that permits browsing but blocks
	// checkout.
	Demo bool
}

func redirect(to string) Resolution { return Resolution{RedirectTo: to} }

// DashboardFor is the exhaustive role -> dashboard mapping.
func DashboardFor(role domain.Role) Page {
	switch role {
	case domain.RoleCustomer:
		return PageCustomerDashboard
	case domain.RoleRestaurant:
		return PageRestaurantDashboard
	case domain.RoleAdmin:
		return PageAdminDashboard
	}
	return PageHome
}

// DashboardPathFor mirrors DashboardFor on the path surface.
func DashboardPathFor(role domain.Role) string {
	switch role {
	case domain.RoleCustomer:
		return "/customer"
	case domain.RoleRestaurant:
		return "/restaurant"
	case domain.RoleAdmin:
		return "/admin"
	}
	return "/"
}

// Resolve maps a path and the current principal (nil when unauthenticated) to
// a resolution. Authenticated principals are forced out of auth sub-flows to
// their role's dashboard; unknown paths redirect home.
func Resolve(path string, principal *domain.Principal) Resolution {
	// Deep link to a restaurant's public menu: browsable by anyone.
	if rest, ok := strings.CutPrefix(path, "/generate/"); ok && rest != "" && !strings.Contains(rest, "/") {
		return Resolution{Page: PageRestaurantMenu, RestaurantID: rest, Demo: principal == nil}
	}

	switch path {
	case "/":
		return Resolution{Page: PageHome, Demo: principal == nil}

	case "/customer":
		// Demo mode may browse the customer view; checkout is blocked later.
		if principal == nil {
			return Resolution{Page: PageCustomerDashboard, Demo: true}
		}
		if principal.Role != domain.RoleCustomer {
			return redirect(DashboardPathFor(principal.Role))
		}
		return Resolution{Page: PageCustomerDashboard}

	case "/restaurant":
		if principal == nil {
			return redirect("/auth/restaurant/signin")
		}
		if principal.Role != domain.RoleRestaurant {
			return redirect(DashboardPathFor(principal.Role))
		}
		return Resolution{Page: PageRestaurantDashboard}

	case "/admin":
		if principal == nil {
			return redirect("/auth/admin")
		}
		if principal.Role != domain.RoleAdmin {
			return redirect(DashboardPathFor(principal.Role))
		}
		return Resolution{Page: PageAdminDashboard}

	case "/auth", "/auth/admin",
		"/auth/customer/signin", "/auth/customer/signup",
		"/auth/restaurant/signin", "/auth/restaurant/signup":
		// A live session overrides any requested auth sub-flow.
		if principal != nil {
			return redirect(DashboardPathFor(principal.Role))
		}
		return Resolution{Page: authPage(path)}
	}

	return redirect("/")
}

func authPage(path string) Page {
	switch path {
	case "/auth":
		return PageAuthChoice
	case "/auth/admin":
		return PageAdminSignIn
	case "/auth/customer/signin":
		return PageCustomerSignIn
	case "/auth/customer/signup":
		return PageCustomerSignUp
	case "/auth/restaurant/signin":
		return PageRestaurantSignIn
	case "/auth/restaurant/signup":
		return PageRestaurantSignUp
	}
	return PageAuthChoice
}
