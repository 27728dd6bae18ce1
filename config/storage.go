package config

import (
	"os"
	"time"
)

const defaultPresignTTL = 15 * time.Minute

// StorageConfig menampung pengaturan S3. Endpoint hanya diisi saat
// memakai layanan S3-compatible (mis. MinIO) di luar AWS.
type StorageConfig struct {
	Region     string
	Bucket     string
	Endpoint   string
	PresignTTL time.Duration
}

func LoadStorageConfig() StorageConfig {
	ttl := defaultPresignTTL
	if raw := os.Getenv("S3_PRESIGN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		}
	}
	return StorageConfig{
		Region:     os.Getenv("AWS_REGION"),
		Bucket:     os.Getenv("AWS_S3_BUCKET"),
		Endpoint:   os.Getenv("S3_ENDPOINT_URL"),
		PresignTTL: ttl,
	}
}
