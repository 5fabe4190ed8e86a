package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	S3        S3Config
	Log       LogConfig
	Limit     LimitConfig
	Transform TransformConfig
}

type ServerConfig struct {
	GRPCHost        string        `envconfig:"GRPC_HOST" default:"127.0.0.1"`
	GRPCPort        int           `envconfig:"GRPC_PORT" default:"9001"`
	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

func (c ServerConfig) GRPCAddr() string {
	return fmt.Sprintf("%s:%d", c.GRPCHost, c.GRPCPort)
}

// HTTPEnabled reports whether the HTTP mirror should be started.
func (c ServerConfig) HTTPEnabled() bool {
	return c.HTTPPort > 0
}

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

type StorageConfig struct {
	Backend       string `envconfig:"STORAGE_BACKEND" default:"local"`
	EditedRoot    string `envconfig:"STORAGE_EDITED_ROOT" default:"./images/edited/"`
	MaxImageBytes int    `envconfig:"STORAGE_MAX_IMAGE_BYTES" default:"33554432"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	Prefix          string `envconfig:"S3_PREFIX" default:"images/edited/"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type LimitConfig struct {
	MaxConcurrentDownloads int `envconfig:"LIMIT_MAX_CONCURRENT_DOWNLOADS" default:"16"`
}

type TransformConfig struct {
	Names []string `envconfig:"TRANSFORM_NAMES"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))

	names := c.Transform.Names[:0]
	for _, name := range c.Transform.Names {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	c.Transform.Names = names

	switch c.Storage.Backend {
	case BackendLocal:
		if c.Storage.EditedRoot == "" {
			return fmt.Errorf("STORAGE_EDITED_ROOT is required for the local backend")
		}
	case BackendS3:
		if c.S3.Bucket == "" || c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "" {
			return fmt.Errorf("S3_BUCKET, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Storage.MaxImageBytes <= 0 {
		return fmt.Errorf("STORAGE_MAX_IMAGE_BYTES must be positive")
	}
	if c.Limit.MaxConcurrentDownloads <= 0 {
		return fmt.Errorf("LIMIT_MAX_CONCURRENT_DOWNLOADS must be positive")
	}
	return nil
}
