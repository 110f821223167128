package parser

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnoswap-labs/exprify/ast"
)

// DefaultCacheSize is the number of queries a Cache keeps when no size is
// given.
const DefaultCacheSize = 256

type cacheEntry struct {
	root ast.Node
	err  error
}

// Cache remembers the outcome of recent Parse calls keyed by the raw input.
// Trees are immutable, so a cached tree may be handed to any number of
// goroutines. Failed parses are cached too. Cache is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, cacheEntry]
}

// NewCache returns a cache holding up to size queries. A size of zero or
// less selects DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Parse returns the cached result for input, parsing it on a miss.
func (c *Cache) Parse(input string) (ast.Node, error) {
	if entry, ok := c.entries.Get(input); ok {
		return entry.root, entry.err
	}

	root, err := Parse(input)
	c.entries.Add(input, cacheEntry{root: root, err: err})
	return root, err
}

func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached entry.
func (c *Cache) Purge() { c.entries.Purge() }
