package service

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"streetcats-backend/internal/domains/photo"
	"streetcats-backend/internal/infrastructure/storage"
	"streetcats-backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	maxFileSize  = 5 * 1024 * 1024 // 5MiB
	objectPrefix = "cats/"
	thumbPrefix  = "cats/thumbs/"
)

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
}

type photoService struct {
	store     photo.ObjectStorage
	processor *storage.ImageProcessor
}

func NewPhotoService(store photo.ObjectStorage, processor *storage.ImageProcessor) photo.Service {
	return &photoService{
		store:     store,
		processor: processor,
	}
}

func (s *photoService) UploadPhoto(ctx context.Context, filename, contentType string, data []byte) (*photo.Upload, error) {
	ext, err := s.validate(filename, contentType, data)
	if err != nil {
		return nil, err
	}

	// <unix-ms>-<uuid>.<ext> under cats/ — unique by construction, and
	// the store additionally refuses overwrites.
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	uploadedURL, err := s.store.Upload(ctx, objectPrefix+name, data, contentType)
	if err != nil {
		logger.Error("photo upload failed", err)
		return nil, photo.ErrUploadFailed
	}

	result := &photo.Upload{URL: uploadedURL}

	// The thumbnail is best effort: a failure here never undoes the upload.
	thumb, err := s.processor.Thumbnail(data)
	if err != nil {
		logger.Warn("thumbnail generation failed", err)
		return result, nil
	}

	thumbURL, err := s.store.Upload(ctx, thumbPrefix+name+".jpg", thumb, "image/jpeg")
	if err != nil {
		logger.Warn("thumbnail upload failed", err)
		return result, nil
	}

	result.ThumbnailURL = thumbURL
	return result, nil
}

// UploadPhotos treats every file independently: one bad file must not
// sink the rest of the batch.
func (s *photoService) UploadPhotos(ctx context.Context, files []photo.File) []photo.Upload {
	uploads := make([]photo.Upload, 0, len(files))
	for _, f := range files {
		u, err := s.UploadPhoto(ctx, f.Filename, f.ContentType, f.Data)
		if err != nil {
			logger.Warn("skipping failed upload "+f.Filename, err)
			continue
		}
		uploads = append(uploads, *u)
	}
	return uploads
}

func (s *photoService) DeletePhoto(ctx context.Context, rawURL string) bool {
	key, ok := s.objectKey(rawURL)
	if !ok {
		logger.Info("delete photo: URL outside the photo bucket", map[string]interface{}{"url": rawURL})
		return false
	}

	if err := s.store.Delete(ctx, key); err != nil {
		logger.Error("delete photo failed", err)
		return false
	}
	return true
}

// validate enforces the upload contract: an allowlisted content type and
// file extension, the size cap, and bytes that actually decode as an
// image. Returns the extension used for the object name.
func (s *photoService) validate(filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", photo.ErrFileRequired
	}

	if !allowedMIMETypes[strings.ToLower(contentType)] {
		return "", photo.ErrInvalidFileType
	}

	if len(data) > maxFileSize {
		return "", photo.ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return "", photo.ErrInvalidExtension
	}

	if _, err := s.processor.Decode(data); err != nil {
		return "", photo.ErrNotAnImage
	}

	return ext, nil
}

// objectKey extracts the object key from a public URL by locating the
// bucket path segment. Anything unparseable or outside the bucket
// yields false.
func (s *photoService) objectKey(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, seg := range segments {
		if seg == s.store.Bucket() && i+1 < len(segments) {
			return strings.Join(segments[i+1:], "/"), true
		}
	}
	return "", false
}
