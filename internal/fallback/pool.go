package fallback

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool for reusing scratch RGBA images.
//
// Pool groups images by their dimensions, allowing efficient reuse of
// identically-sized scratch areas. Images handed out by Get may carry any
// origin; Put moves them back to the origin before storing them.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.RGBA
	maxSize int // max images per bucket
}

// NewPool creates a new image pool with the given maximum images per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[image.Point][]*image.RGBA),
		maxSize: maxPerBucket,
	}
}

// Get retrieves an image covering r from the pool or creates a new one.
// The contents of a reused image are unspecified.
func (p *Pool) Get(r image.Rectangle) *image.RGBA {
	key := r.Size()

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		img := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		img.Rect = r
		return img
	}
	p.mu.Unlock()

	return image.NewRGBA(r)
}

// Put returns img to the pool for reuse. If img is nil or its bucket is at
// capacity, the image is discarded.
func (p *Pool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	key := img.Rect.Size()
	img.Rect = image.Rectangle{Max: key}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, img)
}

// Len returns the number of pooled images of the given size.
func (p *Pool) Len(size image.Point) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[size])
}
