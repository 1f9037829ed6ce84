// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is declared as plain structs with `env` and `envDefault`
// tags and loaded once at process start:
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
//
// Parsing is delegated to github.com/caarlos0/env; .env loading to
// github.com/joho/godotenv.
package config
