package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Cache holds large read-only objects, such as word lists and letter value
// tables, so that they are only parsed once. Each Cache is independent; there
// is no process-wide instance.

type LoadFunc func(key string) (any, error)

type Cache struct {
	sync.Mutex
	objects map[string]any
}

func New() *Cache {
	return &Cache{objects: make(map[string]any)}
}

func (c *Cache) load(key string, loadFunc LoadFunc) (any, error) {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Get returns the object stored under key, calling loadFunc to create it if
// it's not there yet. Failed loads are not cached.
func (c *Cache) Get(key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	return c.load(key, loadFunc)
}

// Evict drops key so that the next Get loads it again.
func (c *Cache) Evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}
