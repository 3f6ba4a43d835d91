package main

import (
	"github.com/nfrund/signup/internal/config"
	"github.com/nfrund/signup/internal/logging"
	"github.com/nfrund/signup/internal/server"
)

func main() {
	logging.New()

	cfg := config.New()

	// Create a new server instance.
	s := server.New(cfg)

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	s.Start()
}
