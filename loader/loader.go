package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	image2 "image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/kpfaulkner/convolve-go/image"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const defaultMaxBytes = 64 << 20

var (
	ErrFetch  = errors.New("fetch failed")
	ErrDecode = errors.New("decode failed")
)

type LoaderOption func(l *ImageLoader) error

func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *ImageLoader) error {
		if client == nil {
			return errors.New("http client must not be nil")
		}
		l.client = client
		return nil
	}
}

// WithMaxBytes caps how much of a response body is read. Larger bodies fail.
func WithMaxBytes(n int64) LoaderOption {
	return func(l *ImageLoader) error {
		if n <= 0 {
			return fmt.Errorf("max bytes must be positive, got %d", n)
		}
		l.maxBytes = n
		return nil
	}
}

// ImageLoader fetches remote images and decodes them into pixel buffers.
type ImageLoader struct {
	client   *http.Client
	maxBytes int64
}

// Result is what FetchAsync delivers. Exactly one of Buffer and Err is set.
type Result struct {
	Buffer *image.PixelBuffer
	Err    error
}

func NewImageLoader(opts ...LoaderOption) (*ImageLoader, error) {
	l := &ImageLoader{
		client:   http.DefaultClient,
		maxBytes: defaultMaxBytes,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Fetch downloads url and decodes it. It blocks until the body is read or ctx is done.
func (l *ImageLoader) Fetch(ctx context.Context, url string) (*image.PixelBuffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	log.Debugf("fetching %s", url)
	resp, err := l.client.Do(req)
	if err != nil {
		log.Warnf("fetching %s: %v", url, err)
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetch, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: body larger than %d bytes", ErrFetch, l.maxBytes)
	}

	return Decode(bytes.NewReader(data))
}

// FetchAsync runs Fetch on its own goroutine. The returned channel yields
// one Result and is then closed.
func (l *ImageLoader) FetchAsync(ctx context.Context, url string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		buf, err := l.Fetch(ctx, url)
		ch <- Result{Buffer: buf, Err: err}
	}()
	return ch
}

// Decode reads any registered image format into a pixel buffer.
func Decode(r io.Reader) (*image.PixelBuffer, error) {
	img, format, err := image2.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	log.Debugf("decoded %s image %v", format, img.Bounds())

	buf, err := image.NewPixelBufferFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return buf, nil
}

// LoadFile decodes a local image file.
func LoadFile(path string) (*image.PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer f.Close()

	return Decode(f)
}
