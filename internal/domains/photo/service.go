package photo

import "context"

// ObjectStorage is what the photo service needs from the object store.
// Satisfied by storage.MinIOStorage.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
	PublicURL(key string) string
}

// Upload is one stored photo: the full-size object URL and its
// thumbnail variant. Thumbnail is empty when generation failed;
// the upload itself still counts.
type Upload struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Service validates and stores photo uploads.
type Service interface {
	// UploadPhoto validates the payload (type, size, real image bytes)
	// before anything touches storage, then uploads the photo and its
	// thumbnail. The generated object name never collides or overwrites.
	UploadPhoto(ctx context.Context, filename, contentType string, data []byte) (*Upload, error)

	// UploadPhotos stores files one at a time, each independently: a file
	// that fails validation or storage is skipped and the rest still
	// upload. Returns the uploads that succeeded.
	UploadPhotos(ctx context.Context, files []File) []Upload

	// DeletePhoto resolves a public URL back to its object key and removes
	// the object. Returns false without calling storage when the URL does
	// not point into the photo bucket.
	DeletePhoto(ctx context.Context, rawURL string) bool
}

// File is one member of a batch upload.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}
