package config

import (
	"fmt"
	"os"
)

// Config is the one explicit configuration object, built at startup and
// passed to collaborators. Backend selection lives here, not in package
// state: DATABASE_URL set means remote records, USE_SPACES=true means remote
// images, REDIS_ADDRESS set enables the list cache. Everything defaults to
// a fully local setup.
type Config struct {
	ServerAddress  string
	DataDir        string
	UploadDir      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		DataDir:        os.Getenv("DATA_DIR"),
		UploadDir:      os.Getenv("UPLOAD_DIR"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "./migrations"
	}

	if cfg.UseSpaces {
		if cfg.SpacesEndpoint == "" || cfg.SpacesBucket == "" || cfg.SpacesAccessKey == "" || cfg.SpacesSecretKey == "" {
			return nil, fmt.Errorf("USE_SPACES is set but Spaces credentials are incomplete")
		}
	}

	return cfg, nil
}
