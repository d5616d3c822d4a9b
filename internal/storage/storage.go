package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrNotDataURI is returned when an image payload is not a base64 data URI.
var ErrNotDataURI = errors.New("image must be a base64 data URI")

// ObjectStorage defines the object operations an image backend must support.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// ImageStore persists base64-encoded images into an object storage
// backend and hands back publicly retrievable URLs.
type ImageStore struct {
	backend ObjectStorage
	baseURL string // public endpoint prefix, no trailing slash
}

// NewImageStore constructs an ImageStore over the provided backend.
func NewImageStore(backend ObjectStorage, baseURL string) *ImageStore {
	return &ImageStore{
		backend: backend,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// EnsureBucket ensures the backing bucket exists.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// SaveDataURI decodes a "data:image/...;base64,..." payload, stores it
// under a fresh key below prefix, and returns the public URL.
func (s *ImageStore) SaveDataURI(ctx context.Context, prefix, dataURI string) (string, error) {
	data, ext, contentType, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.%s", prefix, uuid.New().String(), ext)
	if err := s.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.backend.Bucket(), key), nil
}

// Delete removes a previously stored object by its public URL.
// Unknown URLs are ignored.
func (s *ImageStore) Delete(ctx context.Context, url string) error {
	objPrefix := fmt.Sprintf("%s/%s/", s.baseURL, s.backend.Bucket())
	key, ok := strings.CutPrefix(url, objPrefix)
	if !ok || key == "" {
		return nil
	}
	return s.backend.Delete(ctx, key)
}

func decodeDataURI(dataURI string) (data []byte, ext, contentType string, err error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return nil, "", "", ErrNotDataURI
	}

	header, encoded, ok := strings.Cut(dataURI, ";base64,")
	if !ok {
		return nil, "", "", ErrNotDataURI
	}

	contentType = strings.TrimPrefix(header, "data:")
	ext = contentType[strings.LastIndex(contentType, "/")+1:]

	data, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", "", ErrNotDataURI
	}
	return data, ext, contentType, nil
}
