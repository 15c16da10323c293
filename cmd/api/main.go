package main

import (
	"context"
	"log"
	"os"

	"github.com/Ahadan1/SIPAS-Public-sub001/config"
	"github.com/Ahadan1/SIPAS-Public-sub001/routes"
	"github.com/Ahadan1/SIPAS-Public-sub001/services"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/mailer"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/notifier"
	"github.com/Ahadan1/SIPAS-Public-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	if err := config.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	db := config.ConnectDB()
	storage.InitS3Client()

	numbering := services.NewNumberingService(db, config.LoadNumberingConfig().OrgToken)

	// Consumer notifikasi jalan di background selama proses hidup.
	mailClient := mailer.NewClient(config.LoadEmailConfig())
	go notifier.New(db, mailClient).StartConsumer(context.Background())

	app := fiber.New()

	routes.Register(app, db, numbering)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Printf("🚀 API running on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
