package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket CLI commands fall back to when none is given.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the client signing region. Presigning is purely local only when it is set.
	Region string `mapstructure:"region" default:"us-east-1"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// TransferConfig holds tuning for uploads and downloads.
type TransferConfig struct {
	// Workers is the number of transfers that may run at once.
	Workers int `mapstructure:"workers" default:"4"`
	// PartSizeMB is the multipart chunk size. Files above it are uploaded in parts.
	PartSizeMB int `mapstructure:"part_size_mb" default:"16"`
}

// DefaultRegion is used for signing when no region is configured.
const DefaultRegion = "us-east-1"

// MinPartSizeMB is the smallest multipart chunk S3 accepts.
const MinPartSizeMB = 5

// PartSize returns the part size in bytes, or 0 to let the client pick.
// Values below the S3 minimum are raised to it.
func (c TransferConfig) PartSize() uint64 {
	if c.PartSizeMB <= 0 {
		return 0
	}
	mb := max(c.PartSizeMB, MinPartSizeMB)
	return uint64(mb) * 1024 * 1024
}
