package pack

import (
	"image"

	"github.com/pkg/errors"

	"github.com/gogpu/fontseq/internal/cache"
	intImage "github.com/gogpu/fontseq/internal/image"
)

// DefaultSourceCacheSize is the number of decoded textures a Source keeps.
const DefaultSourceCacheSize = 64

// Source loads source textures from the first target of a list that has them.
// Decoded images are cached by key, so a texture changed on disk after it was
// loaded is not seen again until Forget is called.
type Source struct {
	list   *List
	images *cache.Cache[Key, image.Image]
}

// NewSource returns a source reading from list and caching up to cacheSize
// decoded textures. A cacheSize of 0 or less uses DefaultSourceCacheSize.
func NewSource(list *List, cacheSize int) *Source {
	if cacheSize <= 0 {
		cacheSize = DefaultSourceCacheSize
	}
	return &Source{
		list:   list,
		images: cache.New[Key, image.Image](cacheSize),
	}
}

// LoadImage returns the decoded texture stored under key.
func (s *Source) LoadImage(key Key) (image.Image, error) {
	return s.images.GetOrLoad(key, func() (image.Image, error) {
		t, ok := s.list.FindTexture(key)
		if !ok {
			return nil, errors.Wrapf(ErrNotFound, "texture %s", key)
		}
		data, err := t.ReadFile(t.TexturePath(key))
		if err != nil {
			return nil, err
		}
		img, err := intImage.DecodeBytes(data)
		if err != nil {
			return nil, errors.Wrapf(err, "texture %s in %s", key, t.Name())
		}
		return img, nil
	})
}

// Forget drops a cached texture.
func (s *Source) Forget(key Key) {
	s.images.Delete(key)
}

// CacheStats returns statistics of the decoded texture cache.
func (s *Source) CacheStats() cache.Stats {
	return s.images.Stats()
}
