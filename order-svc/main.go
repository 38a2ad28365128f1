package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"orderiq/config"
	httpapi "orderiq/order-svc/internal/api/http"
	"orderiq/order-svc/internal/cart"
	"orderiq/order-svc/internal/catalog"
	"orderiq/order-svc/internal/identity"
	"orderiq/order-svc/internal/mailer"
	"orderiq/order-svc/internal/notify"
	"orderiq/order-svc/internal/service"
	"orderiq/order-svc/internal/session"
	"orderiq/order-svc/internal/storage"
)

func main() {
	_ = godotenv.Load()

	// Outbound notifications: queue through Kafka when a broker is
	// configured, otherwise post straight to the email relay. Either way the
	// calls stay best-effort.
	emailURL := config.Getenv("EMAIL_SVC_URL", "http://localhost:8080")
	relay := mailer.NewClient(emailURL, http.DefaultClient)

	var notifier notify.Notifier
	if os.Getenv("KAFKA_BROKER") != "" {
		notifier = storage.NewKafkaPublisher(config.NewKafkaWriter("notifications"))
		log.Println("Notifications queued via Kafka")
	} else {
		notifier = notify.NewDirect(relay)
		log.Println("Notifications sent directly to", emailURL)
	}

	// Session persistence: Redis when available, else a local JSON file.
	var sessionKV session.KV
	var qrCache httpapi.QRStore
	if os.Getenv("REDIS_HOST") != "" {
		rdb := config.MustInitRedis()
		defer rdb.Close()
		sessionKV = session.NewRedisKV(rdb)
		qrCache = storage.NewQRCache(rdb, 24*time.Hour)
	} else {
		sessionKV = session.NewFileKV(config.Getenv("SESSION_FILE", "./session.json"))
	}
	sessions := session.NewStore(sessionKV)

	// Profile records: Postgres when configured, else in-process.
	var profiles httpapi.ProfileRepository
	if os.Getenv("DB_HOST") != "" {
		db := config.MustInitPostgres()
		defer db.Close()
		profiles = storage.NewPostgresProfileRepository(db)
	} else {
		profiles = storage.NewMemoryProfileRepository()
	}

	provider := identity.NewMemoryProvider()
	seedDemoAccounts(provider, profiles)

	store := catalog.NewMemoryStore(notifier)
	store.Seed()

	baseURL := config.Getenv("PUBLIC_BASE_URL", "http://localhost:8081")
	handler := httpapi.NewHandler(
		store,
		sessions,
		provider,
		profiles,
		cart.New(),
		service.DefaultQRGenerator{BaseURL: baseURL},
		qrCache,
		notifier,
		config.JWTSecret(),
	)

	addr := ":" + config.Getenv("PORT", "8081")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}

// seedDemoAccounts registers the demo login set so the app is usable without
// an external identity provider.
func seedDemoAccounts(provider *identity.MemoryProvider, profiles httpapi.ProfileRepository) {
	demo := []struct {
		password string
		rec      storage.ProfileRecord
	}{
		{
			password: "Customer1!",
			rec:      storage.ProfileRecord{ID: "cust1", Email: "customer@demo.com", Role: "customer", Name: "John Doe", Phone: "03001234567"},
		},
		{
			password: "Restaurant1!",
			rec: storage.ProfileRecord{
				ID: "rest_user1", Email: "restaurant@demo.com", Role: "restaurant", Name: "Ali Khan",
				RestaurantID: "rest1", RestaurantName: "Karachi Biryani House",
			},
		},
		{
			password: config.Getenv("ADMIN_PASSWORD", "Admin123!"),
			rec:      storage.ProfileRecord{ID: "admin1", Email: "admin@demo.com", Role: "admin", Name: "Administrator"},
		},
	}

	for _, account := range demo {
		if err := provider.Register(account.rec.ID, account.rec.Email, account.password); err != nil {
			log.Printf("demo account %s not seeded: %v", account.rec.Email, err)
			continue
		}
		rec := account.rec
		if err := profiles.InsertProfile(&rec); err != nil {
			log.Printf("demo profile %s not stored: %v", account.rec.Email, err)
		}
	}
}
