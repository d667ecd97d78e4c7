package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ImageProcessor decodes uploads and renders the thumbnail variant.
type ImageProcessor struct {
	ThumbnailSize int // px, longest edge
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{ThumbnailSize: 300}
}

// Decode verifies the payload is a real image and returns its format name
// (jpeg, png, gif, webp). A correct Content-Type header is not proof of
// anything; the bytes are.
func (p *ImageProcessor) Decode(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("not an image: %w", err)
	}
	return format, nil
}

// Thumbnail resizes the image to fit the thumbnail box, encoded as JPEG.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.ThumbnailSize, p.ThumbnailSize, imaging.Lanczos)
	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return b.Bytes(), nil
}
