package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"orderiq/email-svc/internal/domain"
	"orderiq/email-svc/internal/smtp"
	"orderiq/email-svc/internal/templates"
)

// Handler is the relay's single-endpoint surface: GET for the capability
// descriptor, POST to send, OPTIONS for preflight.
type Handler struct {
	Sender smtp.Sender
	Port   string
}

func NewHandler(sender smtp.Sender, port string) *Handler {
	return &Handler{Sender: sender, Port: port}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)

	case http.MethodGet:
		h.status(w)

	case http.MethodPost:
		h.send(w, r)

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	}
}

func (h *Handler) status(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "running",
		"service": "OrderIQ Email Service",
		"port":    h.Port,
		"endpoints": map[string]string{
			"POST /": "Send email (requires type, to, details in body)",
		},
		"emailTypes": domain.Types,
	})
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	msg, err := templates.Render(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Sender.Send(*msg); err != nil {
		log.Printf("Email error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to send email"})
		return
	}

	log.Printf("Email sent successfully to: %s", msg.To)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email sent successfully",
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
