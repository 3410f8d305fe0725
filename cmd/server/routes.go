package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/config"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/http/api"
	catalogapi "github.com/Zitatori/Sorties-famille-en-Suisse/internal/http/api/catalog/endpoints"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/storage"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/store"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, recordStore store.Store, mediaStorage storage.Storage) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/catalog",
	},
		catalogapi.PlaceModule(recordStore, mediaStorage),
		catalogapi.EventModule(recordStore, mediaStorage),
	)

	// Locally stored images are served straight from the upload directory;
	// bucket mode returns CDN URLs instead.
	if !cfg.UseSpaces {
		r.Static("/uploads", cfg.UploadDir)
	}
}
