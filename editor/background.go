package editor

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageResult is the outcome of [DecodeBackground].
type ImageResult struct {
	// The data that was decoded, as passed to DecodeBackground.
	Data   string
	Image  image.Image
	Format string
	Err    error
}

// DecodeBackground decodes a background image in a new goroutine. data is
// either a data: URL or bare base64, which may be standard or URL encoded,
// with or without padding. PNG, JPEG, GIF, BMP, TIFF and WebP are
// supported.
//
// The returned channel receives exactly one result and is then closed. If ctx
// is done before decoding finishes, the result carries ctx's error.
func DecodeBackground(ctx context.Context, data string) <-chan ImageResult {
	ch := make(chan ImageResult, 1)
	go func() {
		defer close(ch)
		res := ImageResult{Data: data}
		done := make(chan struct{})
		go func() {
			defer close(done)
			res.Image, res.Format, res.Err = decodeImage(data)
		}()
		select {
		case <-done:
			ch <- res
		case <-ctx.Done():
			ch <- ImageResult{Data: data, Err: ctx.Err()}
		}
	}()
	return ch
}

func decodeImage(data string) (image.Image, string, error) {
	b, err := decodePayload(data)
	if err != nil {
		return nil, "", err
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// decodePayload extracts the bytes of a data: URL or base64 string.
func decodePayload(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, errors.New("empty image data")
	}
	if rest, ok := strings.CutPrefix(data, "data:"); ok {
		meta, payload, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, errors.New("malformed data URL")
		}
		if !strings.HasSuffix(meta, ";base64") {
			return nil, fmt.Errorf("unsupported data URL encoding %q", meta)
		}
		data = payload
	}
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if b, err := enc.DecodeString(data); err == nil {
			return b, nil
		}
	}
	return nil, errors.New("image data is not valid base64")
}
