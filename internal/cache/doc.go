// Package cache provides a small generic LRU cache.
//
// The pack image source keeps decoded textures here so that drawing the same
// source texture repeatedly decodes it only once:
//
//	c := cache.New[pack.Key, image.Image](64)
//	img, err := c.GetOrLoad(key, load)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
