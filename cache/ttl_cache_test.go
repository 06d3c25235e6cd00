package cache

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests control staleness deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestGet_FreshHitStaleEvicted(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock))

	c.Set("pg:1:rooms", "payload")

	clock.Advance(29 * time.Minute)
	v, ok := c.Get("pg:1:rooms")
	require.True(t, ok)
	assert.Equal(t, "payload", v)

	clock.Advance(2 * time.Minute) // t = 31min
	_, ok = c.Get("pg:1:rooms")
	assert.False(t, ok)
	// The stale entry was evicted on read, not just hidden.
	assert.Equal(t, 0, c.Len())
}

func TestGet_ExactExpiryIsMiss(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock), WithTTL(10*time.Minute))

	c.Set("k", 1)
	clock.Advance(10 * time.Minute)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestSet_OverwriteRefreshesTimestamp(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock))

	c.Set("k", "old")
	clock.Advance(29 * time.Minute)
	c.Set("k", "new")

	clock.Advance(29 * time.Minute)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestIsValid_DoesNotEvict(t *testing.T) {
	clock := newFakeClock()
	c := New(WithClock(clock))

	c.Set("k", 42)
	assert.True(t, c.IsValid("k"))

	clock.Advance(31 * time.Minute)
	assert.False(t, c.IsValid("k"))
	// IsValid is read-only; the stale entry stays until a Get observes it.
	assert.Equal(t, 1, c.Len())
}

func TestClear(t *testing.T) {
	c := New(WithClock(newFakeClock()))
	c.Set("k", 1)
	c.Clear("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.False(t, c.IsValid("k"))
}

func TestMiss_UnknownKey(t *testing.T) {
	c := New(WithClock(newFakeClock()))
	_, ok := c.Get("nothing")
	assert.False(t, ok)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	clock := newFakeClock()

	c := New(WithClock(clock), WithStore(NewFileStore(path)))
	c.Set("pg:1:rooms", map[string]interface{}{"roomNumber": "101"})
	c.Set("pg:2:rooms", []interface{}{"a", "b"})

	// A second cache over the same store reconstitutes the entries with
	// their original timestamps.
	restored := New(WithClock(clock), WithStore(NewFileStore(path)))
	assert.Equal(t, 2, restored.Len())

	v, ok := restored.Get("pg:1:rooms")
	require.True(t, ok)
	raw, ok := v.(json.RawMessage)
	require.True(t, ok)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "101", m["roomNumber"])

	// Entries age from their stored timestamp, not from load time.
	clock.Advance(31 * time.Minute)
	_, ok = restored.Get("pg:2:rooms")
	assert.False(t, ok)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	pairs, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
