package imaging

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"
)

// DefaultCacheCapacity is the number of screenshots a cache keeps when
// NewScreenshotCache is given a non-positive capacity.
const DefaultCacheCapacity = 16

// ErrUnknownScreenshot is returned when an id is not (or no longer) cached.
var ErrUnknownScreenshot = errors.New("unknown screenshot")

// ScreenshotCache keeps recently captured screenshots in memory so that later
// requests can crop, sample, or analyze them without capturing the screen
// again.
//
// Each stored image gets an id of the form "shot-N", where N increases for the
// lifetime of the cache and is never reused, even after Clear. The cache holds
// at most Capacity images; storing one more evicts the oldest.
//
// ScreenshotCache is safe for concurrent use by multiple goroutines.
type ScreenshotCache struct {
	mu       sync.RWMutex
	capacity int
	next     int
	order    []string
	shots    map[string]cachedShot
	now      func() time.Time
}

type cachedShot struct {
	img        image.Image
	capturedAt time.Time
}

// NewScreenshotCache creates an empty cache that holds up to capacity images.
func NewScreenshotCache(capacity int) *ScreenshotCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &ScreenshotCache{
		capacity: capacity,
		shots:    make(map[string]cachedShot),
		now:      time.Now,
	}
}

// Put stores img and returns its id.
func (c *ScreenshotCache) Put(img image.Image) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	id := fmt.Sprintf("shot-%d", c.next)
	c.shots[id] = cachedShot{img: img, capturedAt: c.now()}
	c.order = append(c.order, id)

	for len(c.order) > c.capacity {
		delete(c.shots, c.order[0])
		c.order = c.order[1:]
	}
	return id
}

// Load returns the image stored under id.
func (c *ScreenshotCache) Load(id string) (image.Image, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	shot, ok := c.shots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreenshot, id)
	}
	return shot.img, nil
}

// Evict removes a single image. Unknown ids are ignored.
func (c *ScreenshotCache) Evict(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.shots[id]; !ok {
		return
	}
	delete(c.shots, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear removes every image, freeing the associated memory.
func (c *ScreenshotCache) Clear() {
	c.mu.Lock()
	c.shots = make(map[string]cachedShot)
	c.order = nil
	c.mu.Unlock()
}

// Len reports how many images are cached.
func (c *ScreenshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// ImageInfo describes a cached screenshot without its pixel data.
type ImageInfo struct {
	ID         string    `json:"id"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CapturedAt time.Time `json:"captured_at"`
}

// Info returns metadata for the image stored under id.
func (c *ScreenshotCache) Info(id string) (*ImageInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	shot, ok := c.shots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreenshot, id)
	}
	info := infoOf(id, shot)
	return &info, nil
}

// List returns metadata for every cached image, oldest first.
func (c *ScreenshotCache) List() []ImageInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]ImageInfo, 0, len(c.order))
	for _, id := range c.order {
		infos = append(infos, infoOf(id, c.shots[id]))
	}
	return infos
}

func infoOf(id string, shot cachedShot) ImageInfo {
	b := shot.img.Bounds()
	return ImageInfo{
		ID:         id,
		Width:      b.Dx(),
		Height:     b.Dy(),
		CapturedAt: shot.capturedAt,
	}
}
