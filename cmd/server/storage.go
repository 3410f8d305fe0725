package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/config"
	"github.com/Zitatori/Sorties-famille-en-Suisse/internal/storage"
)

// InitStorage selects the image storage backend. With Spaces configured the
// local directory stays wired in as the upload fallback tier.
func InitStorage(cfg *config.Config) storage.Storage {
	local := storage.NewLocalStorage(cfg.UploadDir)

	if !cfg.UseSpaces {
		log.Info().Str("dir", cfg.UploadDir).Msg("using local image storage")
		return local
	}

	spaces, err := storage.NewSpacesStorage(
		cfg.SpacesEndpoint,
		cfg.SpacesRegion,
		cfg.SpacesBucket,
		cfg.SpacesCDNURL,
		cfg.SpacesAccessKey,
		cfg.SpacesSecretKey,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Spaces storage, using local storage")
		return local
	}

	log.Info().Str("cdn", cfg.SpacesCDNURL).Msg("using Spaces image storage with local fallback")
	return storage.NewFallbackStorage(spaces, local)
}
