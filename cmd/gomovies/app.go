package main

import (
	"github.com/amaumene/gomovies/internal/cache"
	"github.com/amaumene/gomovies/internal/config"
	"github.com/amaumene/gomovies/internal/database"
	"github.com/amaumene/gomovies/internal/handlers"
	"github.com/amaumene/gomovies/internal/prefs"
	"github.com/amaumene/gomovies/internal/services"
	"github.com/amaumene/gomovies/pkg/logger"
)

var (
	Logger           logger.Logger
	Config           *config.Config
	DB               database.Database
	Prefs            prefs.Store
	memoryCache      *cache.LRUCache
	serviceContainer *services.Container
	handler          *handlers.Handler
)

func InitializeLogger() {
	Logger = logger.New()
}

func LoadConfiguration() {
	var err error
	Config, err = config.Load()
	if err != nil {
		Logger.Fatalf("failed to load configuration: %v", err)
	}
	Logger.Infof("[App] configuration loaded")
}

func InitializeStorage() {
	var err error

	DB, err = database.New(Config.DatabasePath)
	if err != nil {
		Logger.Fatalf("failed to initialize favorites database: %v", err)
	}
	Logger.Infof("[App] favorites database initialized at %s", Config.DatabasePath)

	Prefs, err = prefs.NewBolt(Config.PrefsPath)
	if err != nil {
		Logger.Fatalf("failed to initialize preferences store: %v", err)
	}
	Logger.Infof("[App] preferences store initialized at %s", Config.PrefsPath)
}

func InitializeServices() {
	memoryCache = cache.New(Config.CacheSize, Config.CacheTTL)

	tmdbService := services.NewTMDB(Config.TMDBAPIKey, memoryCache, Config.RequestTimeout)
	favoritesService := services.NewFavorites(DB)
	catalogService := services.NewCatalog(tmdbService, DB, Prefs)

	serviceContainer = &services.Container{
		TMDB:      tmdbService,
		Favorites: favoritesService,
		Catalog:   catalogService,
		Cache:     memoryCache,
		DB:        DB,
		Prefs:     Prefs,
		Logger:    logger.New(),
	}

	handler = handlers.New(serviceContainer, Config)

	Logger.Infof("[App] services initialized successfully")
}
