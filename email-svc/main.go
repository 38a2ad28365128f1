package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"orderiq/config"
	httpapi "orderiq/email-svc/internal/api/http"
	"orderiq/email-svc/internal/smtp"
)

func main() {
	_ = godotenv.Load()

	sender := &smtp.SMTPSender{
		Host:     config.Getenv("SMTP_HOST", "smtp.gmail.com"),
		Port:     config.Getenv("SMTP_PORT", "587"),
		Username: config.Getenv("SMTP_USER", ""),
		Password: config.Getenv("SMTP_PASSWORD", ""),
		From:     config.Getenv("SMTP_FROM", "no-reply@orderiq.local"),
	}

	port := config.Getenv("EMAIL_PORT", "8080")
	handler := httpapi.NewHandler(sender, port)

	log.Printf("Email Service running on http://localhost:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
