package domain

// Event mirrors the notification payload order-svc publishes to the
// "notifications" topic and the relay's POST body.
type Event struct {
	Type    string                 `json:"type"`
	To      string                 `json:"to"`
	Details map[string]interface{} `json:"details"`
}
