package mangle

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/thiremani/cfasym/ast"
)

type cacheKey struct {
	node ast.Node
	mode Mode
}

// Cache memoizes mangled names by node identity. Trees must not change
// once their names are cached; Purge drops everything if they do.
type Cache struct {
	names *lru.Cache[cacheKey, string]
}

func NewCache(size int) (*Cache, error) {
	names, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, err
	}
	return &Cache{names: names}, nil
}

// Mangle works like the package-level Mangle, the result is stored in the
// cache.
func (c *Cache) Mangle(n ast.Node, mode Mode) string {
	key := cacheKey{node: n, mode: mode}
	if name, ok := c.names.Get(key); ok {
		return name
	}
	name := Mangle(n, mode)
	c.names.Add(key, name)
	return name
}

func (c *Cache) Len() int { return c.names.Len() }

func (c *Cache) Purge() { c.names.Purge() }
