package main // Entry point package for the interactive console till

import (
	"os"

	log "github.com/sirupsen/logrus" // structured logging

	"github.com/adilbekov/icecream-parlor/internal/catalog" // flat-file catalog loader
	"github.com/adilbekov/icecream-parlor/internal/config"  // environment config loader
	"github.com/adilbekov/icecream-parlor/internal/console" // interactive till shell
	"github.com/adilbekov/icecream-parlor/internal/session" // till session state
)

func main() {
	cfg := config.Load() // Load .env and environment config

	cat := catalog.Load(cfg.DataDir) // Load the menu; missing files degrade to empty categories
	log.WithFields(log.Fields{
		"flavors":    len(cat.Flavors),
		"toppings":   len(cat.Toppings),
		"containers": len(cat.Containers),
	}).Info("catalog loaded")

	parlor := session.New(cat, nil) // wall clock
	shell := console.New(parlor, console.NewLinePrompter(os.Stdin, os.Stdout), os.Stdout, cfg.Currency)
	shell.Run()
}
