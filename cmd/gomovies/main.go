package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gomovies/internal/middleware"
)

func main() {
	InitializeLogger()
	LoadConfiguration()
	InitializeStorage()
	InitializeServices()

	defer DB.Close()
	defer Prefs.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Expired detail entries are swept in the background
	memoryCache.StartCleanup(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(Logger))
	r.Use(middleware.Gzip())
	r.Use(middleware.CORS())

	handler.RegisterRoutes(r)

	Logger.Infof("[App] starting HTTP server on port %s", Config.Port)
	if err := http.ListenAndServe(":"+Config.Port, r); err != nil {
		Logger.Fatalf("[App] server stopped: %v", err)
	}
}
