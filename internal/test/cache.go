package test

import (
	"context"
	"sync"
)

// MapCache is an in-memory snapshot cache for tests.
type MapCache struct {
	mu     sync.Mutex
	Values map[string]string
	GetErr error
	SetErr error
}

// NewMapCache constructs an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{Values: make(map[string]string)}
}

// Get returns the stored value or empty string when absent.
func (c *MapCache) Get(ctx context.Context, key string) (string, error) {
	if c.GetErr != nil {
		return "", c.GetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Values[key], nil
}

// Set stores the value under key.
func (c *MapCache) Set(ctx context.Context, key, value string) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Values[key] = value
	return nil
}
