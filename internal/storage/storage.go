// Package storage keeps uploaded CVs on local disk or in an S3 compatible
// bucket. Objects are private; admins reach them through signed links.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrNotFound = errors.New("storage: object not found")

const (
	TypeLocal        = "local"
	TypeS3           = "s3"
	TypeCloudflareR2 = "cloudflare_r2"
)

// Object is one entry returned by List.
type Object struct {
	Path         string
	Size         int64
	LastModified time.Time
}

// Storage is implemented by LocalStorage and S3Storage. Paths are slash
// separated keys relative to the bucket or base directory.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete of a missing object succeeds.
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// GetSignedURL links to a private object for expiry.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	GetSize(ctx context.Context, path string) (int64, error)
	// List walks every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
}

type Config struct {
	Type       string
	BasePath   string // local root directory
	BaseURL    string // local: origin that serves SignedPath
	Bucket     string // bucket, or the directory under BasePath
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // R2 or another S3 compatible endpoint
	UseSSL     bool
	PublicRead bool
	SigningKey string // HMAC key for local signed links
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal, "":
		return NewLocalStorage(cfg)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeCloudflareR2:
		return NewCloudflareR2Storage(cfg)
	}
	return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
}
