package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"

	"orderiq/config"
	"orderiq/notify-svc/internal/relay"
	"orderiq/notify-svc/internal/service"
)

func main() {
	_ = godotenv.Load()

	reader := config.NewKafkaReader("notifications", "notify-svc-consumer")
	defer reader.Close()

	client := relay.NewClient(config.Getenv("EMAIL_SVC_URL", "http://localhost:8080"), http.DefaultClient)

	consumer := service.NewConsumer(reader, client)
	consumer.Start(context.Background())
}
