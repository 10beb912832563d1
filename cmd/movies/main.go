package main

import (
	"fmt"

	"github.com/moviemesh/moviemesh/internal/adapter"
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

	log := logger.NewLogger("movies")
	cfg, err := config.GetStructuredConfig(&config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":3001"},
		Adapter: config.Adapter{
			ReviewsAddress: "http://localhost:3002",
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	reviewsAdapter, err := adapter.NewHTTPReviewsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating reviews adapter")
	}

	storages := store.NewMovieStorages(log)
	services := service.NewMovieServices(storages, reviewsAdapter, *cfg, log)
	handlers := http.NewHandler(services, log)

	srv, err := server.NewServer(handlers.InitMovies(), cfg.Server, log)
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
