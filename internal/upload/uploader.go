// Package upload sends profile images to the external image host and hands
// back a durable URL. Only profile editing uses it; bookings never touch
// image uploads.
package upload

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disintegration/imaging"
)

type Uploader interface {
	// UploadAvatar stores an image and returns its public URL.
	UploadAvatar(ctx context.Context, filename string, data []byte) (string, error)
}

// avatars are downscaled before upload; anything wider gets resized keeping
// aspect ratio
const maxAvatarWidth = 512

// normalizeAvatar decodes the uploaded image, downscales it when needed, and
// re-encodes as JPEG.
func normalizeAvatar(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode avatar image: %w", err)
	}

	if img.Bounds().Dx() > maxAvatarWidth {
		img = imaging.Resize(img, maxAvatarWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode avatar image: %w", err)
	}

	return buf.Bytes(), nil
}
