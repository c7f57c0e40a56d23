// Package config loads application configuration from environment variables.
//
// Configuration is parsed once at process start into an explicit Config
// struct that is passed into each component; handlers never consult the
// environment directly. A .env file in the working directory is loaded first
// when present, which keeps local development convenient without affecting
// deployed environments.
package config
