// Package config provides configuration management for country-info.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: the relational geonames source (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Artifacts: where built records and the lookup index are persisted (bolt or s3)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Artifacts.Driver)
package config
