// Package config loads seqtrace configuration.
//
// Configuration is optional. Load searches for a config.yml and a .env file
// in the usual places (./cmd/<name>/, ./config/, the working directory),
// reads them with Viper and godotenv, overlays environment variables, applies
// defaults, and validates the result. With no files and no environment the
// defaults reproduce the plain demonstration run.
//
// Environment variables map onto nested keys by underscores, so
// LOGGING_LEVEL=debug sets logging.level.
package config
