// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the known deployment stages.
//
// # Configuration
//
// The Config struct defines the HTTP port, the deployment stage (dev, staging, prod)
// and the CORS allow-list.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by features that echo the stage back to callers.
package server
