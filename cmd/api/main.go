package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/api"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("merrymatch api stopped: %v", err)
	}
}
