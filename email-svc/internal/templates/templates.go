// Package templates renders the notification emails. Details shapes are
// type-specific; missing fields render as empty strings rather than failing,
// matching the relay's lenient contract.
package templates

import (
	"errors"
	"fmt"

	"orderiq/email-svc/internal/domain"
)

var ErrUnknownType = errors.New("invalid email type")

func str(details map[string]interface{}, key string) string {
	if details == nil {
		return ""
	}
	switch v := details[key].(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; totals are integer currency units.
		return fmt.Sprintf("%.0f", v)
	case int:
		return fmt.Sprintf("%d", v)
	case bool:
		return fmt.Sprintf("%t", v)
	}
	return ""
}

// Render builds the subject and HTML body for a request.
func Render(req domain.Request) (*domain.Message, error) {
	d := req.Details
	msg := &domain.Message{To: req.To}

	switch req.Type {
	case "orderConfirmation":
		msg.Subject = "Order Confirmed - OrderIQ"
		msg.HTML = fmt.Sprintf(
			`<h2>Your Order Has Been Confirmed!</h2>
<p>Order ID: <strong>%s</strong></p>
<p>Restaurant: %s</p>
<p>Total: Rs. %s</p>
<p>Estimated Delivery: %s</p>
<p>Thank you for using OrderIQ!</p>`,
			str(d, "orderId"), str(d, "restaurantName"), str(d, "total"), str(d, "estimatedTime"))

	case "orderStatusUpdate":
		msg.Subject = fmt.Sprintf("Order %s - OrderIQ", str(d, "status"))
		msg.HTML = fmt.Sprintf(
			`<h2>Order Status Update</h2>
<p>Your order <strong>#%s</strong> is now: <strong>%s</strong></p>
<p>Track your order on the OrderIQ dashboard.</p>`,
			str(d, "orderId"), str(d, "status"))

	case "restaurantApproval":
		if d != nil {
			if approved, ok := d["approved"].(bool); ok && !approved {
				msg.Subject = "Restaurant Application Update"
				msg.HTML = `<h2>Application Status</h2>
<p>Thank you for your interest in joining OrderIQ.</p>
<p>We'll review your application and get back to you soon.</p>`
				return msg, nil
			}
		}
		msg.Subject = "Restaurant Approved - OrderIQ"
		msg.HTML = fmt.Sprintf(
			`<h2>Congratulations!</h2>
<p>Your restaurant <strong>%s</strong> has been approved.</p>
<p>You can now start accepting orders on OrderIQ.</p>`,
			str(d, "restaurantName"))

	case "welcomeCustomer":
		msg.Subject = "Welcome to OrderIQ!"
		msg.HTML = fmt.Sprintf(
			`<h2>Welcome %s!</h2>
<p>Thank you for joining OrderIQ.</p>
<p>Start exploring restaurants and place your first order today!</p>`,
			str(d, "customerName"))

	case "welcomeRestaurant":
		msg.Subject = "Welcome to OrderIQ - Restaurant Partner"
		msg.HTML = fmt.Sprintf(
			`<h2>Welcome %s!</h2>
<p>Your restaurant is now part of the OrderIQ family.</p>
<p>Set up your menu and start receiving orders!</p>`,
			str(d, "restaurantName"))

	case "otpVerification":
		msg.Subject = "Your OrderIQ Verification Code"
		msg.HTML = fmt.Sprintf(
			`<h2>Email Verification</h2>
<p>Your verification code for OrderIQ is:</p>
<h1>%s</h1>
<p>This code will expire in 10 minutes.</p>
<p>If you didn't request this code, please ignore this email.</p>`,
			str(d, "otp"))

	default:
		return nil, ErrUnknownType
	}

	return msg, nil
}
