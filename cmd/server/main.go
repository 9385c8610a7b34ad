package main // Entry point package for the HTTP till server

import (
	"github.com/labstack/echo/v4"      // Echo web framework
	log "github.com/sirupsen/logrus"   // structured logging

	"github.com/adilbekov/icecream-parlor/internal/catalog" // flat-file catalog loader
	"github.com/adilbekov/icecream-parlor/internal/config"  // environment config loader
	"github.com/adilbekov/icecream-parlor/internal/handler" // till HTTP handlers
	"github.com/adilbekov/icecream-parlor/internal/router"  // route registration
	"github.com/adilbekov/icecream-parlor/internal/session" // till session state
)

func main() {
	cfg := config.Load() // Load .env and environment config

	cat := catalog.Load(cfg.DataDir)           // Load the menu; missing files degrade to empty categories
	parlor := session.New(cat, nil)            // One till session for the whole process, wall clock
	till := handler.NewTillHandler(parlor)     // Handlers share the single session

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, till) // Register till routes

	addr := ":" + cfg.Port
	log.WithFields(log.Fields{
		"addr":       addr,
		"env":        cfg.Env,
		"flavors":    len(cat.Flavors),
		"toppings":   len(cat.Toppings),
		"containers": len(cat.Containers),
	}).Info("starting till server")

	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("till server stopped")
	}
}
