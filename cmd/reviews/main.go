package main

import (
	"fmt"

	"github.com/moviemesh/moviemesh/internal/config"
	"github.com/moviemesh/moviemesh/internal/handler/http"
	"github.com/moviemesh/moviemesh/internal/logger"
	"github.com/moviemesh/moviemesh/internal/server"
	"github.com/moviemesh/moviemesh/internal/service"
	"github.com/moviemesh/moviemesh/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("reviews")
	cfg, err := config.GetStructuredConfig(&config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":3002"},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewReviewStorages(log)
	services := service.NewReviewServices(storages, *cfg, log)
	handlers := http.NewHandler(services, log)

	srv, err := server.NewServer(handlers.InitReviews(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
