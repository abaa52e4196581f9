// Package config provides configuration management for the stocktake server.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, JWT secret, token lifetime)
//   - Database: inventory database connection details
//   - Retail: read-only retail database connection details
//   - Storage: S3/MinIO credentials and bucket for APK distribution
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
