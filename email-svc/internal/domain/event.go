package domain

// Request is the relay's inbound shape: {type, to, details}.
type Request struct {
	Type    string                 `json:"type"`
	To      string                 `json:"to"`
	Details map[string]interface{} `json:"details"`
}

// Message is a rendered email ready for the SMTP sender.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Types accepted by the relay, in the order the status descriptor lists them.
var Types = []string{
	"orderConfirmation",
	"orderStatusUpdate",
	"restaurantApproval",
	"welcomeCustomer",
	"welcomeRestaurant",
	"otpVerification",
}
