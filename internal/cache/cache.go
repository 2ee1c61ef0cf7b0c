// Package cache keeps rendered chart images on disk so repeated requests for
// the same estimate skip rendering.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nathanbeddoewebdev/ecoprint/internal/emissions"

	json "github.com/goccy/go-json"
)

// Image is a rendered chart ready to be served.
type Image struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Cache provides a file-backed image cache with a single TTL.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New returns a cache rooted at dir. A non-positive ttl disables caching.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl, now: time.Now}
}

// DefaultDir returns the chart cache directory under the OS user cache dir.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "ecoprint", "charts")
}

// Key identifies a chart by its format, size and input.
func Key(format string, width, height int, in emissions.Input) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%+v", in))
	return fmt.Sprintf("%s_%dx%d_%s", format, width, height, hex.EncodeToString(sum[:8]))
}

// Enabled reports whether the cache stores anything.
func (c *Cache) Enabled() bool {
	return c != nil && c.dir != "" && c.ttl > 0
}

// Get returns the cached image for key. Expired and unreadable entries are
// reported as misses.
func (c *Cache) Get(key string) (Image, bool, error) {
	if !c.Enabled() {
		return Image{}, false, nil
	}

	path := c.pathForKey(key)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Image{}, false, nil
		}
		return Image{}, false, err
	}

	if c.now().After(info.ModTime().Add(c.ttl)) {
		_ = os.Remove(path)
		return Image{}, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, false, err
	}
	var img Image
	if err := json.Unmarshal(data, &img); err != nil || len(img.Body) == 0 {
		return Image{}, false, nil
	}

	return img, true, nil
}

// Put stores img under key.
func (c *Cache) Put(key string, img Image) error {
	if !c.Enabled() {
		return nil
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	payload, err := json.Marshal(img)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, sanitizeKey(key)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, c.pathForKey(key))
}

// Clear removes all cached entries.
func (c *Cache) Clear() error {
	if c == nil || c.dir == "" {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

func (c *Cache) pathForKey(key string) string {
	return filepath.Join(c.dir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "chart"
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
