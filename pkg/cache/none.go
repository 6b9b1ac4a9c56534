package cache

import (
	"context"
	"time"
)

// None is the cache used when caching is off (--no-cache, backend "none").
// Every lookup misses and writes are dropped, so [Fetch] always renders.
var None Cache = none{}

type none struct{}

func (none) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (none) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (none) Delete(context.Context, string) error { return nil }
func (none) Close() error { return nil }
