package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv copies a .env file from the working directory into the process
// environment. A missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load()
}

type lookupFunc func(key string) (string, bool)

// parseEnv overlays Config with environment variables. JWT_SECRET_KEY and
// JWT_ALGORITHM keep the names deployments already use.
func parseEnv(c *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("GRPC_ADDRESS", &c.EndpointAddrGRPC)
	str("HTTP_ADDRESS", &c.EndpointAddrHTTP)
	str("STORAGE_BACKEND", &c.StorageBackend)
	str("DATABASE_DSN", &c.DatabaseDSN)
	str("BLOB_BACKEND", &c.BlobBackend)
	str("S3_ROOT_USER", &c.S3RootUser)
	str("S3_ROOT_PASSWORD", &c.S3RootPassword)
	str("S3_BUCKET", &c.S3Bucket)
	str("S3_REGION", &c.S3Region)
	str("S3_BASE_ENDPOINT", &c.S3BaseEndpoint)
	str("JWT_SECRET_KEY", &c.SecretKey)
	str("JWT_ALGORITHM", &c.TokenAlgorithm)
	str("LOG_FORMAT", &c.LogFormat)

	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		c.TokenValidityDuration = d
	}
	if v, ok := lookup("BCRYPT_COST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		c.BcryptCost = n
	}
	if v, ok := lookup("BLOB_RETRIES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BLOB_RETRIES: %w", err)
		}
		c.BlobRetries = n
	}
	if v, ok := lookup("MAX_UPLOAD_BYTES"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	if v, ok := lookup("ENFORCE_TODO_OWNERSHIP"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ENFORCE_TODO_OWNERSHIP: %w", err)
		}
		c.EnforceTodoOwnership = b
	}

	return nil
}
