package testutil

import (
	"context"
	"sync"

	"github.com/yatube-project/yatube/internal/repositories"
)

// MemoryImageRepository keeps image blobs in a map for handler tests.
type MemoryImageRepository struct {
	mu     sync.Mutex
	images map[string]repositories.StoredImage
}

// NewMemoryImageRepository creates an empty in-memory blob store.
func NewMemoryImageRepository() *MemoryImageRepository {
	return &MemoryImageRepository{images: make(map[string]repositories.StoredImage)}
}

func (r *MemoryImageRepository) SaveImage(_ context.Context, img *repositories.StoredImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[img.Path] = *img
	return nil
}

func (r *MemoryImageRepository) GetImage(_ context.Context, path string) (*repositories.StoredImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	img, ok := r.images[path]
	if !ok {
		return nil, repositories.ErrImageNotFound
	}
	return &img, nil
}
