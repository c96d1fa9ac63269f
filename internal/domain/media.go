package domain

import (
	"context"
	"io"
)

// MaxUploadSize is the largest accepted media upload in bytes (5 MiB).
const MaxUploadSize = 5 << 20

// MediaFile is an uploaded binary payload.
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStore writes and removes objects by key (infrastructure port).
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	DeleteObject(ctx context.Context, key string) error
}

// MediaService uploads media under a logical folder and removes it by public URL.
type MediaService interface {
	Upload(ctx context.Context, file MediaFile, folder string) (url string, err error)
	Delete(ctx context.Context, url string) error
}
