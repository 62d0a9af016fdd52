package main

import (
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
	"hotel-reservation/services"
)

func main() {
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}
	log.Printf("✅ Inventory file: %q, reservations file: %q", cfg.InventoryFile, cfg.ReservationsFile)

	// Load the room catalog (falls back to the default inventory)
	rooms := services.NewRoomService(cfg.InventoryFile)
	rooms.LoadOrInitialize()

	counter := services.NewReceiptCounter(cfg.ReceiptStart)
	guests := services.NewGuestService()
	desk := controllers.NewSessionController(cfg, rooms, counter, guests, os.Stdin, os.Stdout)

	metrics := middleware.NewMetrics(cfg.MetricsFile)
	run := middleware.Logger(metrics.Middleware(desk.RunSession))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		// inventory is already saved after every confirmation
		log.Println("⚠️  Shutdown signal received, leaving reservation desk")
		os.Exit(0)
	}()

	// One session after another until the input is closed
	for {
		if _, err := run(); err != nil {
			if errors.Is(err, io.EOF) {
				log.Println("✅ Input closed, reservation desk stopped")
				return
			}
			log.Fatalf("❌ Reading input failed: %v", err)
		}
	}
}
