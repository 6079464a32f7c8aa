package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"portfolioapi/internal/model"
	"portfolioapi/internal/storage"
)

const imageKeyPrefix = "images"

// ImageService stores and serves portfolio images in object storage.
type ImageService interface {
	// Upload stores the content under images/<uuid><ext> and describes the result.
	// originalFilename is used only for its extension.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Image, error)

	// Open streams a previously uploaded image by its generated file name.
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)
}

type imageService struct {
	store   storage.Storage
	baseURL string
	opts    options
}

// NewImageService constructs a new ImageService. baseURL is the route that serves
// images, e.g. "/api/portfolio/images".
func NewImageService(store storage.Storage, baseURL string, opts ...Option) ImageService {
	return &imageService{store: store, baseURL: strings.TrimRight(baseURL, "/"), opts: applyOptions(opts)}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	name := s.opts.newID() + strings.ToLower(filepath.Ext(originalFilename))
	key := path.Join(imageKeyPrefix, name)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	return &model.Image{
		Key:         key,
		URL:         s.baseURL + "/" + name,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

func (s *imageService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, storage.ObjectInfo{}, ErrImageNotFound
	}
	rc, info, err := s.store.Get(ctx, path.Join(imageKeyPrefix, name))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrImageNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("get from storage: %w", err)
	}
	return rc, info, nil
}
