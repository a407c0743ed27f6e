package main

import (
	"fmt"
	"os"
	"time"

	"listing-engine/internal/config"
	"listing-engine/internal/events"
	"listing-engine/internal/factory"
	"listing-engine/internal/interaction"
	"listing-engine/internal/listing"
	"listing-engine/internal/registry"
	"listing-engine/internal/server"
	"listing-engine/internal/token"
	"listing-engine/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("LE_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.Log.Level)

	eventLog := events.NewLog()
	store := listing.NewStore()
	users := registry.NewUserRegistry()
	tokens := token.NewLedger()
	listingFactory := factory.New(store, eventLog, cfg.Market.CreationFee, cfg.Market.Treasury)

	svc := interaction.NewService(users, tokens, store, listingFactory, eventLog, time.Now, cfg.Market.BidBond)

	router := server.SetupRouter(svc, cfg.Auth.AdminSecret, cfg.Market.DisplayDecimals)

	fmt.Printf("Starting listing engine on %s...\n", cfg.Server.HTTPAddr)
	if err := router.Run(cfg.Server.HTTPAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
