package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, which bounds upload size over HTTP.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"512"`
	// PresignMaxHours caps the expiry accepted for presigned URLs.
	PresignMaxHours int `mapstructure:"presign_max_hours" default:"168"`
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// PresignMax returns the longest expiry accepted for presigned URLs.
// S3 signatures are valid for at most seven days.
func (c Config) PresignMax() time.Duration {
	if c.PresignMaxHours <= 0 || c.PresignMaxHours > 168 {
		return 168 * time.Hour
	}
	return time.Duration(c.PresignMaxHours) * time.Hour
}
