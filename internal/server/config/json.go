package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Empty values
// leave the current setting untouched.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	StorageBackend        string         `json:"storage_backend"`
	DatabaseDSN           string         `json:"database_dsn"`
	BlobBackend           string         `json:"blob_backend"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
	SecretKey             string         `json:"secret_key"`
	TokenAlgorithm        string         `json:"token_algorithm"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	EnforceTodoOwnership  *bool          `json:"enforce_todo_ownership"`
	BlobRetries           *int           `json:"blob_retries"`
	LogFormat             string         `json:"log_format"`
	MaxUploadBytes        int64          `json:"max_upload_bytes"`
}

// parseJson loads the file named by -c/-config, if any, over config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.BlobBackend, c.BlobBackend)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.TokenAlgorithm, c.TokenAlgorithm)
	setString(&config.LogFormat, c.LogFormat)

	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.EnforceTodoOwnership != nil {
		config.EnforceTodoOwnership = *c.EnforceTodoOwnership
	}
	if c.BlobRetries != nil {
		config.BlobRetries = *c.BlobRetries
	}
	if c.MaxUploadBytes > 0 {
		config.MaxUploadBytes = c.MaxUploadBytes
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
