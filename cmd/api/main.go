// server/cmd/api/main.go
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"taller-api-server/config"
	"taller-api-server/internal/api/routes"
	"taller-api-server/internal/auth"
	"taller-api-server/internal/database"
	"taller-api-server/internal/events"
	"taller-api-server/internal/service"
	"taller-api-server/internal/socket"
	"taller-api-server/internal/store"
	"taller-api-server/internal/webhook"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("could not create indexes")
	}

	// Stores.
	profiles := store.NewMongoProfileStore(db)
	mechanics := store.NewMongoMechanicStore(db)
	clients := store.NewMongoClientStore(db)
	vehicles := store.NewMongoVehicleStore(db)
	zones := store.NewMongoZoneStore(db)
	catalog := store.NewMongoCatalogStore(db)
	orders := store.NewMongoOrderStore(db)
	logs := store.NewMongoLogStore(db)
	quality := store.NewMongoQualityStore(db)
	parts := store.NewMongoPartStore(db)
	movements := store.NewMongoMovementStore(db)
	tools := store.NewMongoToolStore(db)
	notifications := store.NewMongoNotificationStore(db)

	if cfg.Seed.Enabled {
		err := database.Seed(ctx, database.SeedStores{
			Profiles:  profiles,
			Mechanics: mechanics,
			Zones:     zones,
			Catalog:   catalog,
			Parts:     parts,
			Tools:     tools,
		}, cfg.Seed.AdminPassword, log)
		if err != nil {
			log.WithError(err).Fatal("could not seed database")
		}
	}

	// Delivery plumbing.
	expiration, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		expiration = 24 * time.Hour
	}
	authManager := auth.NewManager(cfg.JWT.Secret, expiration)
	hub := socket.NewHub(log)
	notifier := webhook.NewNotifier(cfg.Webhook.NotifyURL)
	center := service.NewNotificationCenter(notifications, hub, notifier, log)

	// Event fan-out.
	dispatcher := events.NewDispatcher(log)
	dispatcher.Subscribe(events.NewMechanicReactor(mechanics, center))
	dispatcher.Subscribe(events.NewShopManagerReactor(profiles, center))
	dispatcher.Subscribe(events.NewReceptionistReactor(profiles, center))

	// Services.
	inventoryService := service.NewInventoryService(parts, movements, profiles, center, log)
	orderService := service.NewOrderService(orders, logs, quality, clients, vehicles, zones, mechanics, catalog, notifications, inventoryService, dispatcher, log)
	toolService := service.NewToolService(tools, mechanics, orders, log)

	router := routes.SetupRouter(routes.Deps{
		Auth:      authManager,
		Hub:       hub,
		Log:       log,
		Orders:    orderService,
		Inventory: inventoryService,
		Tools:     toolService,
		Center:    center,
		Profiles:  profiles,
		Mechanics: mechanics,
		Clients:   clients,
		Vehicles:  vehicles,
		Zones:     zones,
		Catalog:   catalog,
	})

	log.WithField("port", cfg.Server.Port).Info("starting API server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("failed to run server")
	}
}
