package fallback

import (
	"image"
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(2)

	r := image.Rect(3, 4, 7, 9)
	img := pool.Get(r)
	if img.Bounds() != r {
		t.Fatalf("Get(%v).Bounds() = %v", r, img.Bounds())
	}
	pool.Put(img)
	if img.Rect != image.Rect(0, 0, 4, 5) {
		t.Errorf("Put() left Rect = %v, want origin 4x5", img.Rect)
	}
	if got := pool.Len(image.Pt(4, 5)); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	moved := image.Rect(10, 10, 14, 15)
	reused := pool.Get(moved)
	if reused != img {
		t.Error("Get() did not reuse the pooled image")
	}
	if reused.Bounds() != moved {
		t.Errorf("reused Bounds() = %v, want %v", reused.Bounds(), moved)
	}
	if reused.PixOffset(10, 10) != 0 {
		t.Errorf("PixOffset(origin) = %d, want 0", reused.PixOffset(10, 10))
	}
}

func TestPool_MaxPerBucket(t *testing.T) {
	pool := NewPool(1)
	r := image.Rect(0, 0, 2, 2)
	pool.Put(image.NewRGBA(r))
	pool.Put(image.NewRGBA(r))
	pool.Put(nil)
	if got := pool.Len(image.Pt(2, 2)); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				img := pool.Get(image.Rect(j, j, j+3, j+3))
				pool.Put(img)
			}
		}()
	}
	wg.Wait()
	if got := pool.Len(image.Pt(3, 3)); got < 1 || got > 8 {
		t.Errorf("Len() = %d, want 1..8", got)
	}
}
