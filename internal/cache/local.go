package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/klauspost/compress/s2"
)

var _ Cache = (*Local)(nil)

// MinLocalSizeMB is the smallest local cache that is created. freecache
// refuses entries above 1/1024 of its size, so this keeps room for
// compressed entries of up to 16 KB.
const MinLocalSizeMB = 16

// Local is an in-process cache backed by freecache. Values are stored
// s2 compressed.
type Local struct {
	store *freecache.Cache
}

// NewLocal creates a cache of sizeMB megabytes, at least MinLocalSizeMB.
func NewLocal(sizeMB int) *Local {
	if sizeMB < MinLocalSizeMB {
		sizeMB = MinLocalSizeMB
	}
	return &Local{
		store: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (l *Local) Get(_ context.Context, key string) ([]byte, error) {
	compressed, err := l.store.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("local cache get [%s]: %w", key, err)
	}
	value, err := s2.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("local cache decode [%s]: %w", key, err)
	}
	return value, nil
}

// Set stores value for ttl, rounded down to whole seconds. A ttl under one
// second keeps the entry until it is evicted. Values that do not fit even
// compressed fail with ErrTooLarge.
func (l *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	compressed := s2.Encode(nil, value)
	if err := l.store.Set([]byte(key), compressed, int(ttl/time.Second)); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			return fmt.Errorf("local cache set [%s], %d bytes (%d compressed): %w: %w",
				key, len(value), len(compressed), ErrTooLarge, err)
		}
		return fmt.Errorf("local cache set [%s]: %w", key, err)
	}
	return nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	l.store.Del([]byte(key))
	return nil
}

func (l *Local) EntryCount() int64 {
	return l.store.EntryCount()
}
