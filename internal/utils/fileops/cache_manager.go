package fileops

import (
	"os"
	"sync"
	"time"
)

// CacheItem represents a cached item with metadata for invalidation
type CacheItem[T any] struct {
	Value   T
	ModTime time.Time
	Size    int64
}

// Cache is a generic cache whose entries are dropped once the backing file changes
type Cache[K comparable, V any] struct {
	items map[K]*CacheItem[V]
	mutex sync.RWMutex
}

// NewCache creates a new generic cache
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*CacheItem[V]),
	}
}

// GetWithFileValidation retrieves an item if filePath has not changed since it was stored
func (c *Cache[K, V]) GetWithFileValidation(key K, filePath string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	var zero V
	if !exists {
		return zero, false
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		c.Delete(key)
		return zero, false
	}

	if stat.ModTime().After(item.ModTime) || stat.Size() != item.Size {
		c.Delete(key)
		return zero, false
	}

	return item.Value, true
}

// SetWithFileInfo stores an item together with the current metadata of filePath
func (c *Cache[K, V]) SetWithFileInfo(key K, value V, filePath string) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &CacheItem[V]{
		Value:   value,
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}
}

// Delete removes an item from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

// CacheManager holds the contents of declaration files read during a run.
// Input locations often overlap (a directory and a glob inside it), so a
// file is read from disk once per run.
type CacheManager struct {
	contentCache *Cache[string, []byte]
}

// NewCacheManager creates a new CacheManager instance
func NewCacheManager() *CacheManager {
	return &CacheManager{
		contentCache: NewCache[string, []byte](),
	}
}

// GetContent retrieves cached file content or returns false if not found
func (cm *CacheManager) GetContent(filePath string) ([]byte, bool) {
	return cm.contentCache.GetWithFileValidation(filePath, filePath)
}

// SetContent caches file content with file validation
func (cm *CacheManager) SetContent(filePath string, content []byte) {
	cm.contentCache.SetWithFileInfo(filePath, content, filePath)
}

// InvalidateFile removes a specific file from the cache
func (cm *CacheManager) InvalidateFile(filePath string) {
	cm.contentCache.Delete(filePath)
}

// Size returns the number of cached files
func (cm *CacheManager) Size() int {
	return cm.contentCache.Size()
}
