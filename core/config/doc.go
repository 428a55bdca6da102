// Package config provides configuration management for s3dropbox.
//
// It loads a .env file with godotenv when present, then lets Viper resolve every key from the
// environment, falling back to the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Storage: endpoint, credentials, TLS, default bucket, signing region
//   - Transfer: worker count and multipart part size
//   - Log: level and format
//   - Database: optional transfer journal connection
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
