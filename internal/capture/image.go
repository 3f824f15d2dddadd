package capture

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	app_errors "agribrain/backend/internal/errors"
)

// MaxImageSize is the largest image accepted for analysis.
const MaxImageSize = 5 * 1024 * 1024

// Image sources.
const (
	SourceUpload   = "upload"
	SourceSnapshot = "snapshot"
	SourceCamera   = "camera"
)

// Image is a captured, validated picture.
type Image struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size_bytes"`
	Source   string `json:"source"`
	Filename string `json:"filename,omitempty"`
}

// NewImage validates raw bytes: at most MaxImageSize and sniffed as image/*.
func NewImage(data []byte, source string) (Image, error) {
	if len(data) > MaxImageSize {
		return Image{}, tooLarge(int64(len(data)))
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: image is empty", app_errors.ErrInvalidFormat)
	}
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return Image{}, fmt.Errorf("%w: expected an image, got %s", app_errors.ErrInvalidFormat, mime.String())
	}
	return Image{Data: data, MIMEType: mime.String(), Size: int64(len(data)), Source: source}, nil
}

func tooLarge(size int64) error {
	return fmt.Errorf("%w: %d bytes exceeds the %d MB limit", app_errors.ErrFileTooLarge, size, MaxImageSize/(1024*1024))
}

// Upload captures a selected file.
type Upload struct {
	Filename string
	// Size is the declared size; a declared size over the limit is rejected
	// before anything is read.
	Size   int64
	Reader io.Reader
}

func (u Upload) Capture(ctx context.Context) (Image, error) {
	if u.Size > MaxImageSize {
		return Image{}, tooLarge(u.Size)
	}
	if u.Reader == nil {
		return Image{}, fmt.Errorf("%w: no file selected", app_errors.ErrValidation)
	}

	data, err := io.ReadAll(io.LimitReader(u.Reader, MaxImageSize+1))
	if err != nil {
		return Image{}, fmt.Errorf("could not read upload: %w", err)
	}
	if ctx.Err() != nil {
		return Image{}, fmt.Errorf("%w: %v", app_errors.ErrCancelled, ctx.Err())
	}

	img, err := NewImage(data, SourceUpload)
	if err != nil {
		return Image{}, err
	}
	img.Filename = u.Filename
	return img, nil
}

// Snapshot captures a camera frame encoded as a data URL
// ("data:image/png;base64,...").
type Snapshot struct {
	DataURL string
}

func (s Snapshot) Capture(_ context.Context) (Image, error) {
	header, payload, ok := strings.Cut(s.DataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") {
		return Image{}, fmt.Errorf("%w: snapshot is not a data URL", app_errors.ErrInvalidFormat)
	}
	meta := strings.TrimPrefix(header, "data:")
	if !strings.HasSuffix(meta, ";base64") {
		return Image{}, fmt.Errorf("%w: snapshot must be base64 encoded", app_errors.ErrInvalidFormat)
	}
	if !strings.HasPrefix(meta, "image/") {
		return Image{}, fmt.Errorf("%w: snapshot is not an image", app_errors.ErrInvalidFormat)
	}
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > MaxImageSize+2 {
		return Image{}, tooLarge(int64(base64.StdEncoding.DecodedLen(len(payload))))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: snapshot payload: %v", app_errors.ErrInvalidFormat, err)
	}
	return NewImage(data, SourceSnapshot)
}
