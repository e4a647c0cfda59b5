package site

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	defaultImageWidth = 800
	jpegQuality       = 80
)

// allowedWidths bounds the thumbnail cache to a few known sizes.
var allowedWidths = map[int]bool{320: true, 480: true, 800: true}

// thumbnailCache keeps resized JPEG bytes in memory, keyed by
// filename and width. Source images rarely change, so there is no TTL;
// a restart clears it.
type thumbnailCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newThumbnailCache() *thumbnailCache {
	return &thumbnailCache{entries: make(map[string][]byte)}
}

func (tc *thumbnailCache) get(key string) ([]byte, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	data, ok := tc.entries[key]
	return data, ok
}

func (tc *thumbnailCache) put(key string, data []byte) {
	tc.mu.Lock()
	tc.entries[key] = data
	tc.mu.Unlock()
}

// handleThumbnail serves an image from the static img directory, scaled
// down to the requested width and re-encoded as JPEG.
func (a *App) handleThumbnail(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" || strings.Contains(filename, "/") || strings.Contains(filename, "..") {
		return c.NoContent(http.StatusBadRequest)
	}

	width := defaultImageWidth
	if raw := c.QueryParam("w"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !allowedWidths[n] {
			return c.NoContent(http.StatusBadRequest)
		}
		width = n
	}

	key := fmt.Sprintf("%s@%d", filename, width)
	if data, ok := a.thumbnails.get(key); ok {
		return c.Blob(http.StatusOK, "image/jpeg", data)
	}

	src, err := os.Open(filepath.Join(a.staticDir, "img", filename))
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg %s: %w", filename, err)
	}

	a.thumbnails.put(key, buf.Bytes())
	return c.Blob(http.StatusOK, "image/jpeg", buf.Bytes())
}
