// Package images validates uploaded post images and derives the blob-store
// payload: the original bytes, a JPEG thumbnail and a generated storage path.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoders for image.Decode
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const (
	// MaxImageSize caps uploads at 10 MB.
	MaxImageSize = 10 << 20

	// PathPrefix is the posts-specific storage prefix for generated paths.
	PathPrefix = "posts/"

	thumbnailWidth = 320
)

// ErrNotAnImage is returned when the payload does not decode as JPEG, PNG or GIF.
var ErrNotAnImage = errors.New("payload is not a well-formed image")

// ErrTooLarge is returned when the payload exceeds MaxImageSize.
var ErrTooLarge = errors.New("image exceeds the maximum size")

// Upload is a validated image ready for the blob store.
type Upload struct {
	Path        string
	ContentType string
	Data        []byte
	Thumbnail   []byte
}

// Process reads and validates an uploaded file. The original bytes are kept
// untouched; only the thumbnail is re-encoded.
func Process(fh *multipart.FileHeader) (*Upload, error) {
	if fh.Size > MaxImageSize {
		return nil, ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}

	var ext, contentType string
	switch format {
	case "jpeg":
		ext, contentType = ".jpg", "image/jpeg"
	case "png":
		ext, contentType = ".png", "image/png"
	case "gif":
		ext, contentType = ".gif", "image/gif"
	default:
		return nil, ErrNotAnImage
	}

	thumb := resize.Resize(thumbnailWidth, 0, img, resize.Lanczos3)
	var thumbBuf bytes.Buffer
	if err := jpeg.Encode(&thumbBuf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	path := fmt.Sprintf("%s%s-%s%s", PathPrefix, time.Now().Format("20060102"), uuid.New().String(), ext)

	return &Upload{
		Path:        path,
		ContentType: contentType,
		Data:        data,
		Thumbnail:   thumbBuf.Bytes(),
	}, nil
}
