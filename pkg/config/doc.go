// Package config loads the deployment-supplied settings this library treats
// as external data: the BIN table location and the age requirement.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: values
// come from the environment, with an optional .env file as fallback, and are
// parsed into plain structs by field tag.
//
//	var cfg config.RegistryConfig
//	config.MustLoad(&cfg)
//	registry, err := cfg.BinRegistry()
//
// Load is generic and works for any tagged struct, so services embedding
// this library can reuse it for their own settings.
package config
