// Package datauri converts image files into data URIs for the settings store
package datauri

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/tabdeck/tabdeck-tui/internal/domain"
)

// ErrNotImage is returned when the file content is not an image type
var ErrNotImage = errors.New("file is not an image")

// ErrTooLarge is returned when the file exceeds the stored-image size limit
var ErrTooLarge = errors.New("file exceeds the background image size limit")

// ErrNotDataURI is returned when a stored value cannot be parsed as a data URI
var ErrNotDataURI = errors.New("value is not a base64 data URI")

// Encoder converts files on disk into image data URIs. It implements
// domain.FileEncoder and enforces the image MIME and size limits.
type Encoder struct {
	maxBytes int64
}

// NewEncoder creates an encoder with the standard background image limit
func NewEncoder() *Encoder {
	return &Encoder{maxBytes: domain.MaxBackgroundImageBytes}
}

// EncodeFile reads the file at path and returns it as a data URI. It fails
// with ErrTooLarge or ErrNotImage before reading anything into the settings
// record, and honors context cancellation so an in-flight encode can be
// abandoned when a newer upload supersedes it.
func (e *Encoder) EncodeFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	if info.Size() > e.maxBytes {
		return "", fmt.Errorf("%s is %d bytes: %w", path, info.Size(), ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s detected as %s: %w", path, mimeType, ErrNotImage)
	}

	return Encode(mimeType, data), nil
}

// Encode builds a base64 data URI from a MIME type and raw payload
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Info describes a parsed data URI
type Info struct {
	MIMEType string
	Bytes    int64
}

// Parse inspects a stored data URI and reports its MIME type and decoded
// payload size without materializing the payload.
func Parse(uri string) (Info, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Info{}, ErrNotDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return Info{}, ErrNotDataURI
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		return Info{}, ErrNotDataURI
	}

	size := base64.StdEncoding.DecodedLen(len(payload))
	padding := strings.Count(payload, "=")

	return Info{MIMEType: mimeType, Bytes: int64(size - padding)}, nil
}

// IsImage reports whether a stored value is a parseable image data URI
// within the size limit.
func IsImage(uri string) bool {
	info, err := Parse(uri)
	if err != nil {
		return false
	}
	return strings.HasPrefix(info.MIMEType, "image/") && info.Bytes <= domain.MaxBackgroundImageBytes
}
